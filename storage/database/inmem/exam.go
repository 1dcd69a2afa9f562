package inmemdb

import (
	"github.com/google/uuid"

	"github.com/smartpaperhq/smartpaper/core/exam"
)

type examRepository struct {
	papers      *paperTable
	submissions *submissionTable
	grades      *gradeTable
}

func NewExamRepository(db *DB) exam.Repository {
	return &examRepository{
		papers:      db.paper,
		submissions: db.submission,
		grades:      db.grade,
	}
}

// Papers

func (repo *examRepository) queryPapers() []exam.Paper {
	papers := make([]exam.Paper, 0, len(repo.papers.table))
	for _, p := range repo.papers.table {
		papers = append(papers, *p)
	}
	return papers
}

func (repo *examRepository) CreatePaper(p exam.Paper) (exam.Paper, error) {
	repo.papers.mutex.Lock()
	defer repo.papers.mutex.Unlock()

	p.ID = uuid.New().String()
	repo.papers.table[p.ID] = &p
	return p, nil
}

func (repo *examRepository) QueryAllPapers() ([]exam.Paper, error) {
	repo.papers.mutex.RLock()
	defer repo.papers.mutex.RUnlock()
	return repo.queryPapers(), nil
}

func (repo *examRepository) GetPaperByID(id string) (exam.Paper, error) {
	repo.papers.mutex.RLock()
	defer repo.papers.mutex.RUnlock()

	if p, ok := repo.papers.table[id]; ok {
		return *p, nil
	}
	return exam.Paper{}, exam.ErrPaperNotFound
}

func (repo *examRepository) FilterPapersByTeacher(teacherID string) ([]exam.Paper, error) {
	repo.papers.mutex.RLock()
	defer repo.papers.mutex.RUnlock()

	papers := make([]exam.Paper, 0)
	for _, p := range repo.queryPapers() {
		if p.TeacherID == teacherID {
			papers = append(papers, p)
		}
	}
	return papers, nil
}

func (repo *examRepository) FilterPapersByClass(classID string) ([]exam.Paper, error) {
	repo.papers.mutex.RLock()
	defer repo.papers.mutex.RUnlock()

	papers := make([]exam.Paper, 0)
	for _, p := range repo.queryPapers() {
		if p.ClassID == classID {
			papers = append(papers, p)
		}
	}
	return papers, nil
}

func (repo *examRepository) UpdatePaper(p exam.Paper, totalMarks *int) (exam.Paper, error) {
	repo.papers.mutex.Lock()
	defer repo.papers.mutex.Unlock()

	// only save set fields
	origP, ok := repo.papers.table[p.ID]
	if !ok {
		return exam.Paper{}, exam.ErrPaperNotFound
	}
	if p.Title != "" {
		origP.Title = p.Title
	}
	if p.Subject != "" {
		origP.Subject = p.Subject
	}
	if p.ClassID != "" {
		origP.ClassID = p.ClassID
	}
	if p.TeacherID != "" {
		origP.TeacherID = p.TeacherID
	}
	if p.Content != nil {
		origP.Content = p.Content
	}
	if totalMarks != nil {
		origP.TotalMarks = *totalMarks
	}

	repo.papers.table[p.ID] = origP
	return *origP, nil
}

func (repo *examRepository) DeletePaperByID(id string) (bool, error) {
	repo.papers.mutex.Lock()
	defer repo.papers.mutex.Unlock()

	if _, ok := repo.papers.table[id]; !ok {
		return false, nil
	}
	delete(repo.papers.table, id)
	return true, nil
}

// Submissions

func (repo *examRepository) querySubmissions() []exam.Submission {
	subs := make([]exam.Submission, 0, len(repo.submissions.table))
	for _, s := range repo.submissions.table {
		subs = append(subs, *s)
	}
	return subs
}

func (repo *examRepository) CreateSubmission(s exam.Submission) (exam.Submission, error) {
	repo.submissions.mutex.Lock()
	defer repo.submissions.mutex.Unlock()

	s.ID = uuid.New().String()
	repo.submissions.table[s.ID] = &s
	return s, nil
}

func (repo *examRepository) QueryAllSubmissions() ([]exam.Submission, error) {
	repo.submissions.mutex.RLock()
	defer repo.submissions.mutex.RUnlock()
	return repo.querySubmissions(), nil
}

func (repo *examRepository) GetSubmissionByID(id string) (exam.Submission, error) {
	repo.submissions.mutex.RLock()
	defer repo.submissions.mutex.RUnlock()

	if s, ok := repo.submissions.table[id]; ok {
		return *s, nil
	}
	return exam.Submission{}, exam.ErrSubmissionNotFound
}

func (repo *examRepository) FilterSubmissionsByStudent(studentID string) ([]exam.Submission, error) {
	repo.submissions.mutex.RLock()
	defer repo.submissions.mutex.RUnlock()

	subs := make([]exam.Submission, 0)
	for _, s := range repo.querySubmissions() {
		if s.StudentID == studentID {
			subs = append(subs, s)
		}
	}
	return subs, nil
}

func (repo *examRepository) FilterSubmissionsByPaper(paperID string) ([]exam.Submission, error) {
	repo.submissions.mutex.RLock()
	defer repo.submissions.mutex.RUnlock()

	subs := make([]exam.Submission, 0)
	for _, s := range repo.querySubmissions() {
		if s.PaperID == paperID {
			subs = append(subs, s)
		}
	}
	return subs, nil
}

func (repo *examRepository) UpdateSubmission(s exam.Submission, isGraded *bool) (exam.Submission, error) {
	repo.submissions.mutex.Lock()
	defer repo.submissions.mutex.Unlock()

	// only save set fields; PaperID, StudentID and SubmittedAt are immutable
	origS, ok := repo.submissions.table[s.ID]
	if !ok {
		return exam.Submission{}, exam.ErrSubmissionNotFound
	}
	if s.Content != nil {
		origS.Content = s.Content
	}
	if s.FilesUploaded != nil {
		origS.FilesUploaded = s.FilesUploaded
	}
	if isGraded != nil {
		origS.IsGraded = *isGraded
	}

	repo.submissions.table[s.ID] = origS
	return *origS, nil
}

func (repo *examRepository) DeleteSubmissionByID(id string) (bool, error) {
	repo.submissions.mutex.Lock()
	defer repo.submissions.mutex.Unlock()

	if _, ok := repo.submissions.table[id]; !ok {
		return false, nil
	}
	delete(repo.submissions.table, id)
	return true, nil
}

// Grades

func (repo *examRepository) queryGrades() []exam.Grade {
	grades := make([]exam.Grade, 0, len(repo.grades.table))
	for _, g := range repo.grades.table {
		grades = append(grades, *g)
	}
	return grades
}

func (repo *examRepository) CreateGrade(g exam.Grade) (exam.Grade, error) {
	repo.grades.mutex.Lock()
	defer repo.grades.mutex.Unlock()

	g.ID = uuid.New().String()
	repo.grades.table[g.ID] = &g
	return g, nil
}

func (repo *examRepository) QueryAllGrades() ([]exam.Grade, error) {
	repo.grades.mutex.RLock()
	defer repo.grades.mutex.RUnlock()
	return repo.queryGrades(), nil
}

func (repo *examRepository) GetGradeByID(id string) (exam.Grade, error) {
	repo.grades.mutex.RLock()
	defer repo.grades.mutex.RUnlock()

	if g, ok := repo.grades.table[id]; ok {
		return *g, nil
	}
	return exam.Grade{}, exam.ErrGradeNotFound
}

func (repo *examRepository) FilterGradesByStudent(studentID string) ([]exam.Grade, error) {
	repo.grades.mutex.RLock()
	defer repo.grades.mutex.RUnlock()

	grades := make([]exam.Grade, 0)
	for _, g := range repo.queryGrades() {
		if g.StudentID == studentID {
			grades = append(grades, g)
		}
	}
	return grades, nil
}

func (repo *examRepository) FilterGradesBySubmission(submissionID string) ([]exam.Grade, error) {
	repo.grades.mutex.RLock()
	defer repo.grades.mutex.RUnlock()

	grades := make([]exam.Grade, 0)
	for _, g := range repo.queryGrades() {
		if g.SubmissionID == submissionID {
			grades = append(grades, g)
		}
	}
	return grades, nil
}

func (repo *examRepository) DeleteGradeByID(id string) (bool, error) {
	repo.grades.mutex.Lock()
	defer repo.grades.mutex.Unlock()

	if _, ok := repo.grades.table[id]; !ok {
		return false, nil
	}
	delete(repo.grades.table, id)
	return true, nil
}
