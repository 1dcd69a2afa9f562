package inmemdb

import (
	"github.com/google/uuid"

	"github.com/smartpaperhq/smartpaper/core/material"
)

type materialRepository struct {
	db *materialTable
}

func NewStudyMaterialRepository(db *DB) material.Repository {
	return &materialRepository{db: db.material}
}

func (repo *materialRepository) query() []material.StudyMaterial {
	materials := make([]material.StudyMaterial, 0, len(repo.db.table))
	for _, m := range repo.db.table {
		materials = append(materials, *m)
	}
	return materials
}

func (repo *materialRepository) CreateStudyMaterial(m material.StudyMaterial) (material.StudyMaterial, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	m.ID = uuid.New().String()
	repo.db.table[m.ID] = &m
	return m, nil
}

func (repo *materialRepository) QueryAllStudyMaterials() ([]material.StudyMaterial, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *materialRepository) GetStudyMaterialByID(id string) (material.StudyMaterial, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if m, ok := repo.db.table[id]; ok {
		return *m, nil
	}
	return material.StudyMaterial{}, material.ErrNotFound
}

func (repo *materialRepository) FilterStudyMaterialsBySubject(subject string) ([]material.StudyMaterial, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	materials := make([]material.StudyMaterial, 0)
	for _, m := range repo.query() {
		if m.Subject == subject {
			materials = append(materials, m)
		}
	}
	return materials, nil
}

func (repo *materialRepository) FilterStudyMaterialsByUploader(uploadedBy string) ([]material.StudyMaterial, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	materials := make([]material.StudyMaterial, 0)
	for _, m := range repo.query() {
		if m.UploadedBy == uploadedBy {
			materials = append(materials, m)
		}
	}
	return materials, nil
}

func (repo *materialRepository) UpdateStudyMaterial(m material.StudyMaterial) (material.StudyMaterial, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// only save set fields
	origM, ok := repo.db.table[m.ID]
	if !ok {
		return material.StudyMaterial{}, material.ErrNotFound
	}
	if m.Title != "" {
		origM.Title = m.Title
	}
	if m.Subject != "" {
		origM.Subject = m.Subject
	}
	if m.Content != "" {
		origM.Content = m.Content
	}
	if m.UploadedBy != "" {
		origM.UploadedBy = m.UploadedBy
	}

	repo.db.table[m.ID] = origM
	return *origM, nil
}

func (repo *materialRepository) DeleteStudyMaterialByID(id string) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return false, nil
	}
	delete(repo.db.table, id)
	return true, nil
}
