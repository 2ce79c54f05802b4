package repo

import (
	"sort"

	"github.com/regtech-tools/y9c-dashboard/internal/models"
)

// InMemoryMDRMRepository is an in-memory implementation of MDRMRepository.
type InMemoryMDRMRepository struct {
	fields map[string]models.MDRMField
}

func NewInMemoryMDRMRepository() *InMemoryMDRMRepository {
	return &InMemoryMDRMRepository{fields: map[string]models.MDRMField{}}
}

func (r *InMemoryMDRMRepository) GetAll() ([]models.MDRMField, error) {
	var fields []models.MDRMField
	for _, f := range r.fields {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Code < fields[j].Code })
	return fields, nil
}

func (r *InMemoryMDRMRepository) GetByCode(code string) (models.MDRMField, error) {
	f, ok := r.fields[code]
	if !ok {
		return models.MDRMField{}, ErrFieldNotFound
	}
	return f, nil
}

// Add registers a dictionary entry.
func (r *InMemoryMDRMRepository) Add(f models.MDRMField) {
	r.fields[f.Code] = f
}

// Clear removes all entries.
func (r *InMemoryMDRMRepository) Clear() {
	r.fields = map[string]models.MDRMField{}
}
