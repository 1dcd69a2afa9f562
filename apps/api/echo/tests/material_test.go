package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/smartpaperhq/smartpaper/core/material"
	"github.com/smartpaperhq/smartpaper/core/user"
	"github.com/smartpaperhq/smartpaper/tests"
)

func Test_materialApi(t *testing.T) {
	resetDB()

	teacher := testutil.CreateUser(t, usrRepo, "Teacher", "teacher", "teacher@test.cd", "", user.RoleTeacher, true)
	student := testutil.CreateUser(t, usrRepo, "Hero Mbuta", "hero", "hero@test.cd", "", user.RoleStudent, true)
	studentToken := getToken(t, student)

	t.Run("empty catalogue", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t, []interface{}{}...)}
		req, rec := newAuthRequest(http.MethodGet, "/api/study-materials", studentToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	var uploaded material.StudyMaterial

	t.Run("upload", func(t *testing.T) {
		tests := []httpTest{
			{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
			{
				name: "required fields", token: studentToken, wantCode: http.StatusBadRequest,
				wantData: marchallObj(t, map[string]string{
					"title":   "this field is required",
					"subject": "this field is required",
					"content": "this field is required",
				}),
			},
			{
				name: "uploaded", token: getToken(t, teacher), wantCode: http.StatusOK,
				body: marchallObj(t, material.NewStudyMaterial{
					Title:      "Trigonometry Notes",
					Subject:    "Math",
					Content:    "# Sine and Cosine",
					UploadedBy: teacher.ID,
				}),
			},
			// uploadedBy is optional; anonymous/system uploads are fine
			{
				name: "anonymous upload", token: studentToken, wantCode: http.StatusOK,
				body: marchallObj(t, material.NewStudyMaterial{
					Title:   "Optics Summary",
					Subject: "Physics",
					Content: "# Lenses",
				}),
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req, rec := newAuthRequest(http.MethodPost, "/api/study-materials", tt.token, tt.body)
				app.ServeHTTP(rec, req)

				if tt.wantCode == http.StatusOK {
					if rec.Code != tt.wantCode {
						t.Fatalf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
					}
					var respData material.StudyMaterial
					if err := json.Unmarshal(rec.Body.Bytes(), &respData); err != nil {
						t.Fatalf("json.Unmarshal() failed! err %v", err)
					}
					if respData.ID == "" {
						t.Error("failed! no id assigned")
					}
					if tt.name == "uploaded" {
						uploaded = respData
					}
					return
				}
				checkCodeAndData(t, tt, rec)
			})
		}
	})

	t.Run("catalogue", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/study-materials", studentToken)
		app.ServeHTTP(rec, req)
		var materials []material.StudyMaterial
		if err := json.Unmarshal(rec.Body.Bytes(), &materials); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if len(materials) != 2 {
			t.Errorf("len(materials) = %d, want 2", len(materials))
		}
		found := false
		for _, m := range materials {
			if m.ID == uploaded.ID && m.UploadedBy == teacher.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("materials = %+v, missing %+v", materials, uploaded)
		}
	})
}
