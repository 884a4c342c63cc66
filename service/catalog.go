package service

import (
	"context"
	"strings"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgTreatmentNotFound     = "This treatment does not exist"
	msgTreatmentExists       = "Duplicate entry, treatment with this name exists"
	msgPrescriptionNotFound  = "Invalid prescription, it does not exist"
	msgPrescriptionExists    = "Duplicate entry, prescription with this name exists"
	msgPrescriptionTypeEmpty = "type is required"
)

// CatalogService manages the dentist's treatments and prescriptions.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService returns a CatalogService.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// parseID treats an id that is not a UUID the same as an absent one.
func parseID(id, notFoundMsg string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, notFound(notFoundMsg)
	}
	return parsed, nil
}

// Treatments lists every treatment ordered by name.
func (s *CatalogService) Treatments(ctx context.Context) ([]model.Treatment, error) {
	treatments := []model.Treatment{}
	if err := s.db.WithContext(ctx).Order("name").Find(&treatments).Error; err != nil {
		return nil, internal("failed to list treatments", err)
	}
	return treatments, nil
}

// CreateTreatment adds a treatment. Names are unique.
func (s *CatalogService) CreateTreatment(ctx context.Context, name string, price float64) (*model.Treatment, error) {
	name = util.NormalizeName(name)
	if v := util.ValidateRequired("name", name); !v.Valid {
		return nil, badRequest(v.Error)
	}
	if price < 0 {
		return nil, badRequest("price must not be negative")
	}

	t := model.Treatment{Name: name, Price: price}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, storeError(err, msgTreatmentExists, msgTreatmentNotFound)
	}
	return &t, nil
}

// DeleteTreatment removes a treatment and returns its name.
func (s *CatalogService) DeleteTreatment(ctx context.Context, id string) (string, error) {
	parsed, err := parseID(id, msgTreatmentNotFound)
	if err != nil {
		return "", err
	}

	var t model.Treatment
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, "id = ?", parsed).Error; err != nil {
			return err
		}
		return tx.Delete(&t).Error
	})
	if err != nil {
		return "", storeError(err, msgTreatmentExists, msgTreatmentNotFound)
	}
	return t.Name, nil
}

// Prescriptions returns every prescription grouped by type.
func (s *CatalogService) Prescriptions(ctx context.Context) (map[string][]model.PrescriptionItem, error) {
	var rows []model.Prescription
	if err := s.db.WithContext(ctx).Order("type, name").Find(&rows).Error; err != nil {
		return nil, internal("failed to list prescriptions", err)
	}

	grouped := make(map[string][]model.PrescriptionItem)
	for _, p := range rows {
		grouped[p.Type] = append(grouped[p.Type], model.PrescriptionItem{ID: p.ID, Name: p.Name})
	}
	return grouped, nil
}

// PrescriptionInput is the editable part of a prescription.
type PrescriptionInput struct {
	Name string
	Type string
}

func (in *PrescriptionInput) normalize() error {
	in.Name = util.NormalizeName(in.Name)
	in.Type = strings.ToLower(util.NormalizeName(in.Type))
	if v := util.ValidateRequired("name", in.Name); !v.Valid {
		return badRequest(v.Error)
	}
	if in.Type == "" {
		return badRequest(msgPrescriptionTypeEmpty)
	}
	return nil
}

// CreatePrescription adds a prescription. Names are unique.
func (s *CatalogService) CreatePrescription(ctx context.Context, in PrescriptionInput) (*model.Prescription, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	p := model.Prescription{Name: in.Name, Type: in.Type}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, storeError(err, msgPrescriptionExists, msgPrescriptionNotFound)
	}
	return &p, nil
}

// UpdatePrescription replaces the name and type of a prescription.
func (s *CatalogService) UpdatePrescription(ctx context.Context, id string, in PrescriptionInput) (*model.Prescription, error) {
	parsed, err := parseID(id, msgPrescriptionNotFound)
	if err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var p model.Prescription
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", parsed).Error; err != nil {
			return err
		}
		p.Name = in.Name
		p.Type = in.Type
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, storeError(err, msgPrescriptionExists, msgPrescriptionNotFound)
	}
	return &p, nil
}

// DeletePrescription removes a prescription and returns its name.
func (s *CatalogService) DeletePrescription(ctx context.Context, id string) (string, error) {
	parsed, err := parseID(id, msgPrescriptionNotFound)
	if err != nil {
		return "", err
	}

	var p model.Prescription
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", parsed).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		return "", storeError(err, msgPrescriptionExists, msgPrescriptionNotFound)
	}
	return p.Name, nil
}
