package inmemdb

import (
	"testing"

	"github.com/smartpaperhq/smartpaper/core/material"
	"github.com/smartpaperhq/smartpaper/tests"
)

func TestStudyMaterialRepository(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := NewStudyMaterialRepository(db)

	m := testutil.CreateStudyMaterial(t, repo, "Trigonometry Notes", "Math", "# Sine and Cosine", "teacher1")
	testutil.CreateStudyMaterial(t, repo, "Optics Summary", "Physics", "# Lenses", "")

	t.Run("get round trip", func(t *testing.T) {
		got, err := repo.GetStudyMaterialByID(m.ID)
		if err != nil {
			t.Fatalf("GetStudyMaterialByID() failed: %v", err)
		}
		if got != m {
			t.Errorf("GetStudyMaterialByID() = %+v, want %+v", got, m)
		}
	})

	t.Run("filter by subject", func(t *testing.T) {
		mats, err := repo.FilterStudyMaterialsBySubject("Math")
		if err != nil {
			t.Fatalf("FilterStudyMaterialsBySubject() failed: %v", err)
		}
		if len(mats) != 1 || mats[0].ID != m.ID {
			t.Errorf("FilterStudyMaterialsBySubject() = %+v, want [%+v]", mats, m)
		}
	})

	t.Run("filter by uploader", func(t *testing.T) {
		mats, err := repo.FilterStudyMaterialsByUploader("teacher1")
		if err != nil {
			t.Fatalf("FilterStudyMaterialsByUploader() failed: %v", err)
		}
		if len(mats) != 1 || mats[0].ID != m.ID {
			t.Errorf("FilterStudyMaterialsByUploader() = %+v, want [%+v]", mats, m)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		updated, err := repo.UpdateStudyMaterial(material.StudyMaterial{ID: m.ID, Content: "# Sine, Cosine and Tangent"})
		if err != nil {
			t.Fatalf("UpdateStudyMaterial() failed: %v", err)
		}
		if updated.Content != "# Sine, Cosine and Tangent" {
			t.Errorf("updated.Content = %s", updated.Content)
		}
		if updated.Title != m.Title || updated.Subject != m.Subject || updated.UploadedBy != m.UploadedBy {
			t.Errorf("UpdateStudyMaterial() touched unset fields: %+v", updated)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if ok, _ := repo.DeleteStudyMaterialByID(m.ID); !ok {
			t.Error("DeleteStudyMaterialByID() = false, want true")
		}
		if _, err := repo.GetStudyMaterialByID(m.ID); err != material.ErrNotFound {
			t.Errorf("GetStudyMaterialByID() error = %v, want %v", err, material.ErrNotFound)
		}
	})
}
