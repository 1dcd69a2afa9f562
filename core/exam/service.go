package exam

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrPaperNotFound      = errors.New("paper not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrGradeNotFound      = errors.New("grade not found")
)

type (
	// Repository holds the Paper, Submission and Grade collections.
	// The three are independent; references between them are plain IDs
	// with no cascade or integrity checks.
	Repository interface {
		CreatePaper(p Paper) (Paper, error)
		QueryAllPapers() ([]Paper, error)
		GetPaperByID(id string) (Paper, error)
		FilterPapersByTeacher(teacherID string) ([]Paper, error)
		FilterPapersByClass(classID string) ([]Paper, error)
		UpdatePaper(p Paper, totalMarks *int) (Paper, error)
		DeletePaperByID(id string) (bool, error)

		CreateSubmission(s Submission) (Submission, error)
		QueryAllSubmissions() ([]Submission, error)
		GetSubmissionByID(id string) (Submission, error)
		FilterSubmissionsByStudent(studentID string) ([]Submission, error)
		FilterSubmissionsByPaper(paperID string) ([]Submission, error)
		UpdateSubmission(s Submission, isGraded *bool) (Submission, error)
		DeleteSubmissionByID(id string) (bool, error)

		CreateGrade(g Grade) (Grade, error)
		QueryAllGrades() ([]Grade, error)
		GetGradeByID(id string) (Grade, error)
		FilterGradesByStudent(studentID string) ([]Grade, error)
		FilterGradesBySubmission(submissionID string) ([]Grade, error)
		DeleteGradeByID(id string) (bool, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Papers

func (svc *Service) CreatePaper(np NewPaper) (Paper, error) {
	p := Paper{
		Title:      np.Title,
		Subject:    np.Subject,
		ClassID:    np.ClassID,
		TeacherID:  np.TeacherID,
		Content:    np.Content,
		TotalMarks: np.TotalMarks,
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.CreatePaper(p)
}

func (svc *Service) QueryAllPapers() ([]Paper, error) {
	return svc.repo.QueryAllPapers()
}

func (svc *Service) GetPaper(id string) (Paper, error) {
	return svc.repo.GetPaperByID(id)
}

func (svc *Service) FilterPapersByTeacher(teacherID string) ([]Paper, error) {
	return svc.repo.FilterPapersByTeacher(teacherID)
}

func (svc *Service) FilterPapersByClass(classID string) ([]Paper, error) {
	return svc.repo.FilterPapersByClass(classID)
}

func (svc *Service) UpdatePaper(id string, up UpdatePaper) (Paper, error) {
	p := Paper{
		ID:        id,
		Title:     up.Title,
		Subject:   up.Subject,
		ClassID:   up.ClassID,
		TeacherID: up.TeacherID,
		Content:   up.Content,
	}
	return svc.repo.UpdatePaper(p, up.TotalMarks)
}

func (svc *Service) DeletePaper(id string) (bool, error) {
	return svc.repo.DeletePaperByID(id)
}

// Submissions

func (svc *Service) CreateSubmission(ns NewSubmission) (Submission, error) {
	s := Submission{
		PaperID:       ns.PaperID,
		StudentID:     ns.StudentID,
		Content:       ns.Content,
		FilesUploaded: ns.FilesUploaded,
		SubmittedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateSubmission(s)
}

func (svc *Service) QueryAllSubmissions() ([]Submission, error) {
	return svc.repo.QueryAllSubmissions()
}

func (svc *Service) GetSubmission(id string) (Submission, error) {
	return svc.repo.GetSubmissionByID(id)
}

func (svc *Service) FilterSubmissionsByStudent(studentID string) ([]Submission, error) {
	return svc.repo.FilterSubmissionsByStudent(studentID)
}

func (svc *Service) FilterSubmissionsByPaper(paperID string) ([]Submission, error) {
	return svc.repo.FilterSubmissionsByPaper(paperID)
}

func (svc *Service) UpdateSubmission(id string, us UpdateSubmission) (Submission, error) {
	s := Submission{
		ID:            id,
		Content:       us.Content,
		FilesUploaded: us.FilesUploaded,
	}
	return svc.repo.UpdateSubmission(s, us.IsGraded)
}

// MarkGraded flips the submission's isGraded flag. Callers creating a Grade
// invoke this separately; the two collections stay uncoordinated otherwise.
func (svc *Service) MarkGraded(id string) (Submission, error) {
	graded := true
	return svc.repo.UpdateSubmission(Submission{ID: id}, &graded)
}

func (svc *Service) DeleteSubmission(id string) (bool, error) {
	return svc.repo.DeleteSubmissionByID(id)
}

// Grades

func (svc *Service) CreateGrade(ng NewGrade) (Grade, error) {
	g := Grade{
		SubmissionID: ng.SubmissionID,
		StudentID:    ng.StudentID,
		PaperID:      ng.PaperID,
		Score:        ng.Score,
		TotalMarks:   ng.TotalMarks,
		Feedback:     ng.Feedback,
		GradedAt:     time.Now().UTC(),
	}
	return svc.repo.CreateGrade(g)
}

func (svc *Service) QueryAllGrades() ([]Grade, error) {
	return svc.repo.QueryAllGrades()
}

func (svc *Service) GetGrade(id string) (Grade, error) {
	return svc.repo.GetGradeByID(id)
}

func (svc *Service) FilterGradesByStudent(studentID string) ([]Grade, error) {
	return svc.repo.FilterGradesByStudent(studentID)
}

func (svc *Service) FilterGradesBySubmission(submissionID string) ([]Grade, error) {
	return svc.repo.FilterGradesBySubmission(submissionID)
}

func (svc *Service) DeleteGrade(id string) (bool, error) {
	return svc.repo.DeleteGradeByID(id)
}
