package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/smartpaperhq/smartpaper/core/class"
	"github.com/smartpaperhq/smartpaper/core/exam"
	"github.com/smartpaperhq/smartpaper/core/material"
	"github.com/smartpaperhq/smartpaper/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, uname, email, pwd, role string,
	isActive bool,
	createdAt ...time.Time,
) user.User {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		FullName:  name,
		Username:  uname,
		Email:     email,
		Role:      role,
		IsActive:  isActive,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateClass(
	t *testing.T,
	repo class.Repository,
	name, teacherID, subject string,
) class.Class {
	cls, err := repo.CreateClass(class.Class{
		Name:      name,
		TeacherID: teacherID,
		Subject:   subject,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	return cls
}

func CreatePaper(
	t *testing.T,
	repo exam.Repository,
	title, subject, classID, teacherID string,
	totalMarks int,
	content ...json.RawMessage,
) exam.Paper {
	p := exam.Paper{
		Title:      title,
		Subject:    subject,
		ClassID:    classID,
		TeacherID:  teacherID,
		TotalMarks: totalMarks,
		CreatedAt:  time.Now().UTC(),
	}
	if len(content) > 0 {
		p.Content = content[0]
	}
	p, err := repo.CreatePaper(p)
	if err != nil {
		t.Fatalf("CreatePaper() failed: %v", err)
	}
	return p
}

func CreateSubmission(
	t *testing.T,
	repo exam.Repository,
	paperID, studentID string,
	content ...json.RawMessage,
) exam.Submission {
	s := exam.Submission{
		PaperID:     paperID,
		StudentID:   studentID,
		SubmittedAt: time.Now().UTC(),
	}
	if len(content) > 0 {
		s.Content = content[0]
	}
	s, err := repo.CreateSubmission(s)
	if err != nil {
		t.Fatalf("CreateSubmission() failed: %v", err)
	}
	return s
}

func CreateGrade(
	t *testing.T,
	repo exam.Repository,
	submissionID, studentID, paperID string,
	score, totalMarks int,
	feedback string,
) exam.Grade {
	g, err := repo.CreateGrade(exam.Grade{
		SubmissionID: submissionID,
		StudentID:    studentID,
		PaperID:      paperID,
		Score:        score,
		TotalMarks:   totalMarks,
		Feedback:     feedback,
		GradedAt:     time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateGrade() failed: %v", err)
	}
	return g
}

func CreateStudyMaterial(
	t *testing.T,
	repo material.Repository,
	title, subject, content, uploadedBy string,
) material.StudyMaterial {
	m, err := repo.CreateStudyMaterial(material.StudyMaterial{
		Title:      title,
		Subject:    subject,
		Content:    content,
		UploadedBy: uploadedBy,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateStudyMaterial() failed: %v", err)
	}
	return m
}
