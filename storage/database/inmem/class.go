package inmemdb

import (
	"github.com/google/uuid"

	"github.com/smartpaperhq/smartpaper/core/class"
)

type classRepository struct {
	db *classTable
}

func NewClassRepository(db *DB) class.Repository {
	return &classRepository{db: db.class}
}

func (repo *classRepository) query() []class.Class {
	classes := make([]class.Class, 0, len(repo.db.table))
	for _, c := range repo.db.table {
		classes = append(classes, *c)
	}
	return classes
}

func (repo *classRepository) CreateClass(cls class.Class) (class.Class, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	cls.ID = uuid.New().String()
	repo.db.table[cls.ID] = &cls
	return cls, nil
}

func (repo *classRepository) QueryAllClasses() ([]class.Class, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *classRepository) GetClassByID(id string) (class.Class, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if cls, ok := repo.db.table[id]; ok {
		return *cls, nil
	}
	return class.Class{}, class.ErrNotFound
}

func (repo *classRepository) FilterClassesByTeacher(teacherID string) ([]class.Class, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	classes := make([]class.Class, 0)
	for _, cls := range repo.query() {
		if cls.TeacherID == teacherID {
			classes = append(classes, cls)
		}
	}
	return classes, nil
}

func (repo *classRepository) UpdateClass(cls class.Class) (class.Class, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// only save set fields
	origCls, ok := repo.db.table[cls.ID]
	if !ok {
		return class.Class{}, class.ErrNotFound
	}
	if cls.Name != "" {
		origCls.Name = cls.Name
	}
	if cls.TeacherID != "" {
		origCls.TeacherID = cls.TeacherID
	}
	if cls.Subject != "" {
		origCls.Subject = cls.Subject
	}

	repo.db.table[cls.ID] = origCls
	return *origCls, nil
}

func (repo *classRepository) DeleteClassByID(id string) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return false, nil
	}
	delete(repo.db.table, id)
	return true, nil
}
