package material

import (
	"time"

	"github.com/smartpaperhq/smartpaper/core"
)

// StudyMaterial is a shared study resource. UploadedBy is a soft User
// reference and may be empty (anonymous/system uploads).
type StudyMaterial struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subject    string    `json:"subject"`
	Content    string    `json:"content"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"` // UTC
}

// NewStudyMaterial contains information needed to create a new StudyMaterial.
type NewStudyMaterial struct {
	Title      string `json:"title" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Content    string `json:"content" validate:"required"`
	UploadedBy string `json:"uploadedBy"`
}

func (nm *NewStudyMaterial) Validate() error {
	nm.Title = core.CleanString(nm.Title)
	nm.Subject = core.CleanString(nm.Subject)
	nm.UploadedBy = core.CleanString(nm.UploadedBy)
	return core.Validate.Struct(nm)
}

// UpdateStudyMaterial defines what information may be provided to modify an
// existing StudyMaterial. Zero-valued fields are left untouched.
type UpdateStudyMaterial struct {
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	Content    string `json:"content"`
	UploadedBy string `json:"uploadedBy"`
}

func (um *UpdateStudyMaterial) Validate() error {
	um.Title = core.CleanString(um.Title)
	um.Subject = core.CleanString(um.Subject)
	um.UploadedBy = core.CleanString(um.UploadedBy)
	return core.Validate.Struct(um)
}
