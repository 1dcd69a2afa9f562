package class

import (
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("class not found")

type (
	Repository interface {
		CreateClass(cls Class) (Class, error)
		QueryAllClasses() ([]Class, error)
		GetClassByID(id string) (Class, error)
		// FilterClassesByTeacher does a linear scan for all classes with the given teacherId.
		FilterClassesByTeacher(teacherID string) ([]Class, error)
		// UpdateClass merges set fields of cls onto the stored record.
		UpdateClass(cls Class) (Class, error)
		// DeleteClassByID reports whether a record was actually deleted.
		DeleteClassByID(id string) (bool, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nc NewClass) (Class, error) {
	cls := Class{
		Name:      nc.Name,
		TeacherID: nc.TeacherID,
		Subject:   nc.Subject,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateClass(cls)
}

func (svc *Service) QueryAll() ([]Class, error) {
	return svc.repo.QueryAllClasses()
}

func (svc *Service) GetByID(id string) (Class, error) {
	return svc.repo.GetClassByID(id)
}

func (svc *Service) FilterByTeacher(teacherID string) ([]Class, error) {
	return svc.repo.FilterClassesByTeacher(teacherID)
}

func (svc *Service) Update(id string, uc UpdateClass) (Class, error) {
	cls := Class{
		ID:        id,
		Name:      uc.Name,
		TeacherID: uc.TeacherID,
		Subject:   uc.Subject,
	}
	return svc.repo.UpdateClass(cls)
}

func (svc *Service) Delete(id string) (bool, error) {
	return svc.repo.DeleteClassByID(id)
}
