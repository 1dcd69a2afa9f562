package material

import (
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("study material not found")

type (
	Repository interface {
		CreateStudyMaterial(m StudyMaterial) (StudyMaterial, error)
		QueryAllStudyMaterials() ([]StudyMaterial, error)
		GetStudyMaterialByID(id string) (StudyMaterial, error)
		FilterStudyMaterialsBySubject(subject string) ([]StudyMaterial, error)
		FilterStudyMaterialsByUploader(uploadedBy string) ([]StudyMaterial, error)
		// UpdateStudyMaterial merges set fields of m onto the stored record.
		UpdateStudyMaterial(m StudyMaterial) (StudyMaterial, error)
		// DeleteStudyMaterialByID reports whether a record was actually deleted.
		DeleteStudyMaterialByID(id string) (bool, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nm NewStudyMaterial) (StudyMaterial, error) {
	m := StudyMaterial{
		Title:      nm.Title,
		Subject:    nm.Subject,
		Content:    nm.Content,
		UploadedBy: nm.UploadedBy,
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateStudyMaterial(m)
}

func (svc *Service) QueryAll() ([]StudyMaterial, error) {
	return svc.repo.QueryAllStudyMaterials()
}

func (svc *Service) GetByID(id string) (StudyMaterial, error) {
	return svc.repo.GetStudyMaterialByID(id)
}

func (svc *Service) FilterBySubject(subject string) ([]StudyMaterial, error) {
	return svc.repo.FilterStudyMaterialsBySubject(subject)
}

func (svc *Service) FilterByUploader(uploadedBy string) ([]StudyMaterial, error) {
	return svc.repo.FilterStudyMaterialsByUploader(uploadedBy)
}

func (svc *Service) Update(id string, um UpdateStudyMaterial) (StudyMaterial, error) {
	m := StudyMaterial{
		ID:         id,
		Title:      um.Title,
		Subject:    um.Subject,
		Content:    um.Content,
		UploadedBy: um.UploadedBy,
	}
	return svc.repo.UpdateStudyMaterial(m)
}

func (svc *Service) Delete(id string) (bool, error) {
	return svc.repo.DeleteStudyMaterialByID(id)
}
