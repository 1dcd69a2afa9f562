package inmemdb

import (
	"encoding/json"
	"testing"

	"github.com/smartpaperhq/smartpaper/core/exam"
	"github.com/smartpaperhq/smartpaper/tests"
)

func TestPaperRepository(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := NewExamRepository(db)

	content := json.RawMessage(`{"questions":[{"type":"mcq","text":"2+2?","marks":5}]}`)
	p := testutil.CreatePaper(t, repo, "Algebra Final", "Math", "class1", "teacher1", 100, content)
	testutil.CreatePaper(t, repo, "Mechanics Quiz", "Physics", "class2", "teacher2", 20)

	t.Run("content stored as-is", func(t *testing.T) {
		got, err := repo.GetPaperByID(p.ID)
		if err != nil {
			t.Fatalf("GetPaperByID() failed: %v", err)
		}
		if string(got.Content) != string(content) {
			t.Errorf("got.Content = %s, want %s", got.Content, content)
		}
	})

	t.Run("filter by teacher", func(t *testing.T) {
		papers, err := repo.FilterPapersByTeacher("teacher1")
		if err != nil {
			t.Fatalf("FilterPapersByTeacher() failed: %v", err)
		}
		if len(papers) != 1 || papers[0].ID != p.ID {
			t.Errorf("FilterPapersByTeacher() = %+v, want [%+v]", papers, p)
		}

		papers, err = repo.FilterPapersByTeacher("nobody")
		if err != nil {
			t.Fatalf("FilterPapersByTeacher() failed: %v", err)
		}
		if len(papers) != 0 {
			t.Errorf("FilterPapersByTeacher() = %+v, want empty", papers)
		}
	})

	t.Run("filter by class", func(t *testing.T) {
		papers, err := repo.FilterPapersByClass("class2")
		if err != nil {
			t.Fatalf("FilterPapersByClass() failed: %v", err)
		}
		if len(papers) != 1 || papers[0].Subject != "Physics" {
			t.Errorf("FilterPapersByClass() = %+v, want the Physics paper", papers)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		marks := 50
		updated, err := repo.UpdatePaper(exam.Paper{ID: p.ID, Title: "Algebra Retake"}, &marks)
		if err != nil {
			t.Fatalf("UpdatePaper() failed: %v", err)
		}
		if updated.Title != "Algebra Retake" || updated.TotalMarks != 50 {
			t.Errorf("UpdatePaper() = %+v", updated)
		}
		if updated.Subject != p.Subject || updated.ClassID != p.ClassID || string(updated.Content) != string(content) {
			t.Errorf("UpdatePaper() touched unset fields: %+v", updated)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if ok, _ := repo.DeletePaperByID(p.ID); !ok {
			t.Error("DeletePaperByID() = false, want true")
		}
		if ok, _ := repo.DeletePaperByID(p.ID); ok {
			t.Error("DeletePaperByID() = true, want false")
		}
		if _, err := repo.GetPaperByID(p.ID); err != exam.ErrPaperNotFound {
			t.Errorf("GetPaperByID() error = %v, want %v", err, exam.ErrPaperNotFound)
		}
	})
}

func TestSubmissionRepository(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := NewExamRepository(db)

	sub := testutil.CreateSubmission(t, repo, "paper1", "student1")
	testutil.CreateSubmission(t, repo, "paper2", "student2")

	t.Run("created ungraded", func(t *testing.T) {
		if sub.IsGraded {
			t.Error("expected new submission to be ungraded")
		}
	})

	t.Run("filter by student", func(t *testing.T) {
		subs, err := repo.FilterSubmissionsByStudent("student1")
		if err != nil {
			t.Fatalf("FilterSubmissionsByStudent() failed: %v", err)
		}
		if len(subs) != 1 || subs[0].ID != sub.ID {
			t.Errorf("FilterSubmissionsByStudent() = %+v, want [%+v]", subs, sub)
		}
	})

	t.Run("filter by paper", func(t *testing.T) {
		subs, err := repo.FilterSubmissionsByPaper("paper1")
		if err != nil {
			t.Fatalf("FilterSubmissionsByPaper() failed: %v", err)
		}
		if len(subs) != 1 || subs[0].ID != sub.ID {
			t.Errorf("FilterSubmissionsByPaper() = %+v, want [%+v]", subs, sub)
		}
	})

	t.Run("mark graded", func(t *testing.T) {
		graded := true
		updated, err := repo.UpdateSubmission(exam.Submission{ID: sub.ID}, &graded)
		if err != nil {
			t.Fatalf("UpdateSubmission() failed: %v", err)
		}
		if !updated.IsGraded {
			t.Error("expected submission to be graded")
		}
	})

	t.Run("immutable fields", func(t *testing.T) {
		updated, err := repo.UpdateSubmission(
			exam.Submission{ID: sub.ID, PaperID: "other", StudentID: "other", FilesUploaded: []string{"scan.pdf"}},
			nil,
		)
		if err != nil {
			t.Fatalf("UpdateSubmission() failed: %v", err)
		}
		if updated.PaperID != sub.PaperID || updated.StudentID != sub.StudentID {
			t.Errorf("UpdateSubmission() touched immutable fields: %+v", updated)
		}
		if !updated.SubmittedAt.Equal(sub.SubmittedAt) {
			t.Errorf("updated.SubmittedAt = %v, want %v", updated.SubmittedAt, sub.SubmittedAt)
		}
		if len(updated.FilesUploaded) != 1 || updated.FilesUploaded[0] != "scan.pdf" {
			t.Errorf("updated.FilesUploaded = %v, want [scan.pdf]", updated.FilesUploaded)
		}
	})
}

func TestGradeRepository(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := NewExamRepository(db)

	sub := testutil.CreateSubmission(t, repo, "paper1", "student1")
	g := testutil.CreateGrade(t, repo, sub.ID, "student1", "paper1", 42, 50, "good work")

	t.Run("grading does not flip the submission", func(t *testing.T) {
		refreshed, err := repo.GetSubmissionByID(sub.ID)
		if err != nil {
			t.Fatalf("GetSubmissionByID() failed: %v", err)
		}
		if refreshed.IsGraded {
			t.Error("creating a grade must not mark the submission graded")
		}
	})

	t.Run("filter by student", func(t *testing.T) {
		grades, err := repo.FilterGradesByStudent("student1")
		if err != nil {
			t.Fatalf("FilterGradesByStudent() failed: %v", err)
		}
		if len(grades) != 1 || grades[0].ID != g.ID {
			t.Errorf("FilterGradesByStudent() = %+v, want [%+v]", grades, g)
		}
	})

	t.Run("filter by submission", func(t *testing.T) {
		grades, err := repo.FilterGradesBySubmission(sub.ID)
		if err != nil {
			t.Fatalf("FilterGradesBySubmission() failed: %v", err)
		}
		if len(grades) != 1 || grades[0].Feedback != "good work" {
			t.Errorf("FilterGradesBySubmission() = %+v, want [%+v]", grades, g)
		}
	})

	t.Run("dangling references are kept", func(t *testing.T) {
		orphan := testutil.CreateGrade(t, repo, "no-such-submission", "no-such-student", "no-such-paper", 0, 10, "")
		got, err := repo.GetGradeByID(orphan.ID)
		if err != nil {
			t.Fatalf("GetGradeByID() failed: %v", err)
		}
		if got.SubmissionID != "no-such-submission" {
			t.Errorf("got.SubmissionID = %s, want no-such-submission", got.SubmissionID)
		}
	})
}
