package inmemdb

import (
	"reflect"
	"testing"
	"time"

	"github.com/smartpaperhq/smartpaper/core/user"
	"github.com/smartpaperhq/smartpaper/tests"
)

func TestUserRepository(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := NewUserRepository(db)

	t.Run("get absent user", func(t *testing.T) {
		if _, err := repo.GetUserByID("nope"); err != user.ErrNotFound {
			t.Errorf("GetUserByID() error = %v, want %v", err, user.ErrNotFound)
		}
	})

	usr := testutil.CreateUser(t, repo, "Awe Mbuta", "awe", "awe@test.cd", "", user.RoleTeacher, true)

	t.Run("create assigns id", func(t *testing.T) {
		if usr.ID == "" {
			t.Error("CreateUser() did not assign an ID")
		}
	})

	t.Run("get round trip", func(t *testing.T) {
		got, err := repo.GetUserByID(usr.ID)
		if err != nil {
			t.Fatalf("GetUserByID() failed: %v", err)
		}
		if !reflect.DeepEqual(got, usr) {
			t.Errorf("GetUserByID() = %+v, want %+v", got, usr)
		}
		if got, _ = repo.GetUserByUsernameOrEmail("awe@test.cd"); got.ID != usr.ID {
			t.Errorf("GetUserByUsernameOrEmail() = %+v, want %+v", got, usr)
		}
	})

	t.Run("uniqueness", func(t *testing.T) {
		if err := repo.CheckUsernameUniqueness("awe", "other@test.cd"); err != user.ErrUsernameExists {
			t.Errorf("CheckUsernameUniqueness() error = %v, want %v", err, user.ErrUsernameExists)
		}
		if err := repo.CheckUsernameUniqueness("other", "awe@test.cd"); err != user.ErrEmailExists {
			t.Errorf("CheckUsernameUniqueness() error = %v, want %v", err, user.ErrEmailExists)
		}
		// own records are excluded on update
		if err := repo.CheckUsernameUniqueness("awe", "awe@test.cd", usr); err != nil {
			t.Errorf("CheckUsernameUniqueness() error = %v, want nil", err)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		updated, err := repo.UpdateUser(user.User{ID: usr.ID, FullName: "Awe M."}, nil)
		if err != nil {
			t.Fatalf("UpdateUser() failed: %v", err)
		}
		if updated.FullName != "Awe M." {
			t.Errorf("updated.FullName = %s, want Awe M.", updated.FullName)
		}
		if updated.Username != usr.Username || updated.Email != usr.Email || updated.Role != usr.Role {
			t.Errorf("UpdateUser() touched unset fields: %+v", updated)
		}

		// empty update is a no-op
		same, err := repo.UpdateUser(user.User{ID: usr.ID}, nil)
		if err != nil {
			t.Fatalf("UpdateUser() failed: %v", err)
		}
		if !reflect.DeepEqual(same, updated) {
			t.Errorf("UpdateUser() = %+v, want %+v", same, updated)
		}

		active := false
		deactivated, err := repo.UpdateUser(user.User{ID: usr.ID, LastLogin: time.Now().UTC()}, &active)
		if err != nil {
			t.Fatalf("UpdateUser() failed: %v", err)
		}
		if deactivated.IsActive {
			t.Error("expected user to be deactivated")
		}
		if deactivated.LastLogin.IsZero() {
			t.Error("expected LastLogin to be set")
		}
	})

	t.Run("filter by role", func(t *testing.T) {
		testutil.CreateUser(t, repo, "Hercule Mbuyi", "hercule", "hercule@test.cd", "", user.RoleStudent, true)

		teachers, err := repo.FilterUsersByRole(user.RoleTeacher)
		if err != nil {
			t.Fatalf("FilterUsersByRole() failed: %v", err)
		}
		if len(teachers) != 1 || teachers[0].ID != usr.ID {
			t.Errorf("FilterUsersByRole() = %+v, want [%+v]", teachers, usr)
		}

		admins, err := repo.FilterUsersByRole(user.RoleAdmin)
		if err != nil {
			t.Fatalf("FilterUsersByRole() failed: %v", err)
		}
		if len(admins) != 0 {
			t.Errorf("FilterUsersByRole() = %+v, want empty", admins)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ok, err := repo.DeleteUserByID(usr.ID)
		if err != nil {
			t.Fatalf("DeleteUserByID() failed: %v", err)
		}
		if !ok {
			t.Error("DeleteUserByID() = false, want true")
		}

		ok, err = repo.DeleteUserByID(usr.ID)
		if err != nil {
			t.Fatalf("DeleteUserByID() failed: %v", err)
		}
		if ok {
			t.Error("DeleteUserByID() = true, want false")
		}
	})
}
