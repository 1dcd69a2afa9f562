package class

import (
	"time"

	"github.com/smartpaperhq/smartpaper/core"
)

type Class struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeacherID string    `json:"teacherId"` // soft reference, not enforced
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"` // UTC
}

// NewClass contains information needed to create a new Class.
type NewClass struct {
	Name      string `json:"name" validate:"required"`
	TeacherID string `json:"teacherId" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
}

func (nc *NewClass) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Subject = core.CleanString(nc.Subject)
	nc.TeacherID = core.CleanString(nc.TeacherID)
	return core.Validate.Struct(nc)
}

// UpdateClass defines what information may be provided to modify an existing Class.
// Zero-valued fields are left untouched.
type UpdateClass struct {
	Name      string `json:"name"`
	TeacherID string `json:"teacherId"`
	Subject   string `json:"subject"`
}

func (uc *UpdateClass) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	uc.Subject = core.CleanString(uc.Subject)
	uc.TeacherID = core.CleanString(uc.TeacherID)
	return core.Validate.Struct(uc)
}
