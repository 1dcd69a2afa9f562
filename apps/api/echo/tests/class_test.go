package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/smartpaperhq/smartpaper/core/class"
	"github.com/smartpaperhq/smartpaper/core/user"
	"github.com/smartpaperhq/smartpaper/tests"
)

func Test_classApi_query(t *testing.T) {
	resetDB()

	teacher := testutil.CreateUser(t, usrRepo, "Teacher", "teacher", "teacher@test.cd", "", user.RoleTeacher, true)
	student := testutil.CreateUser(t, usrRepo, "Hero Mbuta", "hero", "hero@test.cd", "", user.RoleStudent, true)
	studentToken := getToken(t, student)

	cls1 := testutil.CreateClass(t, clsRepo, "Form 4 East", teacher.ID, "Math")
	cls2 := testutil.CreateClass(t, clsRepo, "Form 2 West", "gone-teacher", "Physics")

	empty := marchallList(t, []interface{}{}...)

	tests := []httpTest{
		{name: "Auth required", path: "/api/classes", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Get all", path: "/api/classes", token: studentToken,
			wantCode: http.StatusOK, wantData: marchallList(t, cls1, cls2),
		},
		{
			name: "By teacher", path: "/api/classes/teacher/" + teacher.ID, token: studentToken,
			wantCode: http.StatusOK, wantData: marchallList(t, cls1),
		},
		// a dangling teacherId is served as-is
		{
			name: "By absent teacher", path: "/api/classes/teacher/gone-teacher", token: studentToken,
			wantCode: http.StatusOK, wantData: marchallList(t, cls2),
		},
		{
			name: "By unknown teacher", path: "/api/classes/teacher/lol", token: studentToken,
			wantCode: http.StatusOK, wantData: empty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_classApi_create(t *testing.T) {
	resetDB()

	teacher := testutil.CreateUser(t, usrRepo, "Teacher", "teacher", "teacher@test.cd", "", user.RoleTeacher, true)
	student := testutil.CreateUser(t, usrRepo, "Hero Mbuta", "hero", "hero@test.cd", "", user.RoleStudent, true)

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Teacher or admin required", token: getToken(t, student),
			body:     marchallObj(t, class.NewClass{Name: "Form 4 East", TeacherID: teacher.ID, Subject: "Math"}),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name: "required fields", token: getToken(t, teacher), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"name":      "this field is required",
				"teacherId": "this field is required",
				"subject":   "this field is required",
			}),
		},
		{
			name: "created", token: getToken(t, teacher),
			body:     marchallObj(t, class.NewClass{Name: "Form 4 East", TeacherID: teacher.ID, Subject: "Math"}),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/api/classes", tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.name == "created" {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var respData class.Class
				if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
					t.Fatalf("json.Unmarshal() failed! err %v", err)
				}
				if respData.ID == "" {
					t.Error("failed! no id assigned")
				}
				if respData.CreatedAt.IsZero() {
					t.Error("failed! createdAt not set")
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}
