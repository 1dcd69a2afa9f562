// Package inmemdb implements all repositories on plain in-process maps.
// The store lives for the lifetime of the process; nothing is persisted.
// Every table carries its own RWMutex since the HTTP server handles
// requests concurrently.
package inmemdb

import (
	"sync"

	"github.com/smartpaperhq/smartpaper/core/class"
	"github.com/smartpaperhq/smartpaper/core/exam"
	"github.com/smartpaperhq/smartpaper/core/material"
	"github.com/smartpaperhq/smartpaper/core/user"
)

type (
	DB struct {
		user       *userTable
		class      *classTable
		paper      *paperTable
		submission *submissionTable
		grade      *gradeTable
		material   *materialTable
	}

	userTable struct {
		table map[string]*user.User
		mutex sync.RWMutex
	}
	classTable struct {
		table map[string]*class.Class
		mutex sync.RWMutex
	}
	paperTable struct {
		table map[string]*exam.Paper
		mutex sync.RWMutex
	}
	submissionTable struct {
		table map[string]*exam.Submission
		mutex sync.RWMutex
	}
	gradeTable struct {
		table map[string]*exam.Grade
		mutex sync.RWMutex
	}
	materialTable struct {
		table map[string]*material.StudyMaterial
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		class:      &classTable{table: make(map[string]*class.Class)},
		paper:      &paperTable{table: make(map[string]*exam.Paper)},
		submission: &submissionTable{table: make(map[string]*exam.Submission)},
		grade:      &gradeTable{table: make(map[string]*exam.Grade)},
		material:   &materialTable{table: make(map[string]*material.StudyMaterial)},
	}
	return db, nil
}

// Reset empties every table. Test helper.
func (db *DB) Reset() {
	db.user.mutex.Lock()
	db.user.table = make(map[string]*user.User)
	db.user.mutex.Unlock()

	db.class.mutex.Lock()
	db.class.table = make(map[string]*class.Class)
	db.class.mutex.Unlock()

	db.paper.mutex.Lock()
	db.paper.table = make(map[string]*exam.Paper)
	db.paper.mutex.Unlock()

	db.submission.mutex.Lock()
	db.submission.table = make(map[string]*exam.Submission)
	db.submission.mutex.Unlock()

	db.grade.mutex.Lock()
	db.grade.table = make(map[string]*exam.Grade)
	db.grade.mutex.Unlock()

	db.material.mutex.Lock()
	db.material.table = make(map[string]*material.StudyMaterial)
	db.material.mutex.Unlock()
}
