package exam

import (
	"encoding/json"
	"time"

	"github.com/smartpaperhq/smartpaper/core"
)

// Paper is an exam paper authored by a teacher. Content is an opaque
// structured blob (question list with type, text, options, marks); it is
// stored and served as-is, never inspected.
type Paper struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Subject    string          `json:"subject"`
	ClassID    string          `json:"classId"`   // soft reference, not enforced
	TeacherID  string          `json:"teacherId"` // soft reference, not enforced
	Content    json.RawMessage `json:"content"`
	TotalMarks int             `json:"totalMarks"`
	CreatedAt  time.Time       `json:"createdAt"` // UTC
}

// Submission is a student's answer sheet for a Paper. IsGraded is flipped
// via an explicit mark-graded call; creating a Grade does not touch it.
type Submission struct {
	ID            string          `json:"id"`
	PaperID       string          `json:"paperId"`
	StudentID     string          `json:"studentId"`
	Content       json.RawMessage `json:"content"`
	FilesUploaded []string        `json:"filesUploaded"`
	SubmittedAt   time.Time       `json:"submittedAt"` // UTC
	IsGraded      bool            `json:"isGraded"`
}

type Grade struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submissionId"`
	StudentID    string    `json:"studentId"`
	PaperID      string    `json:"paperId"`
	Score        int       `json:"score"`
	TotalMarks   int       `json:"totalMarks"`
	Feedback     string    `json:"feedback,omitempty"`
	GradedAt     time.Time `json:"gradedAt"` // UTC
}

// NewPaper contains information needed to create a new Paper.
type NewPaper struct {
	Title      string          `json:"title" validate:"required"`
	Subject    string          `json:"subject" validate:"required"`
	ClassID    string          `json:"classId" validate:"required"`
	TeacherID  string          `json:"teacherId" validate:"required"`
	Content    json.RawMessage `json:"content"`
	TotalMarks int             `json:"totalMarks" validate:"min=0"`
}

func (np *NewPaper) Validate() error {
	np.Title = core.CleanString(np.Title)
	np.Subject = core.CleanString(np.Subject)
	np.ClassID = core.CleanString(np.ClassID)
	np.TeacherID = core.CleanString(np.TeacherID)
	return core.Validate.Struct(np)
}

// UpdatePaper defines what information may be provided to modify an existing Paper.
// Zero-valued fields are left untouched.
type UpdatePaper struct {
	Title      string          `json:"title"`
	Subject    string          `json:"subject"`
	ClassID    string          `json:"classId"`
	TeacherID  string          `json:"teacherId"`
	Content    json.RawMessage `json:"content"`
	TotalMarks *int            `json:"totalMarks" validate:"omitempty,min=0"`
}

func (up *UpdatePaper) Validate() error {
	up.Title = core.CleanString(up.Title)
	up.Subject = core.CleanString(up.Subject)
	up.ClassID = core.CleanString(up.ClassID)
	up.TeacherID = core.CleanString(up.TeacherID)
	return core.Validate.Struct(up)
}

// NewSubmission contains information needed to create a new Submission.
type NewSubmission struct {
	PaperID       string          `json:"paperId" validate:"required"`
	StudentID     string          `json:"studentId" validate:"required"`
	Content       json.RawMessage `json:"content"`
	FilesUploaded []string        `json:"filesUploaded"`
}

func (ns *NewSubmission) Validate() error {
	ns.PaperID = core.CleanString(ns.PaperID)
	ns.StudentID = core.CleanString(ns.StudentID)
	return core.Validate.Struct(ns)
}

// UpdateSubmission defines what information may be provided to modify an
// existing Submission. SubmittedAt is immutable.
type UpdateSubmission struct {
	Content       json.RawMessage `json:"content"`
	FilesUploaded []string        `json:"filesUploaded"`
	IsGraded      *bool           `json:"isGraded"`
}

func (us *UpdateSubmission) Validate() error {
	return core.Validate.Struct(us)
}

// NewGrade contains information needed to create a new Grade.
type NewGrade struct {
	SubmissionID string `json:"submissionId" validate:"required"`
	StudentID    string `json:"studentId" validate:"required"`
	PaperID      string `json:"paperId" validate:"required"`
	Score        int    `json:"score" validate:"min=0"`
	TotalMarks   int    `json:"totalMarks" validate:"min=0"`
	Feedback     string `json:"feedback"`
}

func (ng *NewGrade) Validate() error {
	ng.SubmissionID = core.CleanString(ng.SubmissionID)
	ng.StudentID = core.CleanString(ng.StudentID)
	ng.PaperID = core.CleanString(ng.PaperID)
	ng.Feedback = core.CleanString(ng.Feedback)
	return core.Validate.Struct(ng)
}
