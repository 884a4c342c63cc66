package service

import (
	"context"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MedicalService stores and returns patients' medical details.
type MedicalService struct {
	db *gorm.DB
}

// NewMedicalService returns a MedicalService.
func NewMedicalService(db *gorm.DB) *MedicalService {
	return &MedicalService{db: db}
}

// MedicalDetailsInput replaces all medical fields of one patient.
type MedicalDetailsInput struct {
	Name        string
	PhoneNumber string
	Allergies   []string
	Illnesses   []string
	Smoking     bool
	Tobacco     bool
	Drinking    bool
}

var medicalColumns = []string{"allergies", "illnesses", "smoking", "tobacco", "drinking", "updated_at"}

// Upsert overwrites the five medical fields of the identified patient. Lists are
// replaced wholesale, never merged.
func (s *MedicalService) Upsert(ctx context.Context, in MedicalDetailsInput) (*model.MedicalDetailsResponse, error) {
	if v := util.ValidatePhoneNumber(in.PhoneNumber); !v.Valid {
		return nil, badRequest(v.Error)
	}
	if v := util.ValidateRequired("name", in.Name); !v.Valid {
		return nil, badRequest(v.Error)
	}

	user, err := findUser(ctx, s.db, in.PhoneNumber, in.Name)
	if err != nil {
		return nil, err
	}

	details := model.Details{
		UserID:    user.ID,
		Allergies: model.JoinList(in.Allergies),
		Illnesses: model.JoinList(in.Illnesses),
		Smoking:   in.Smoking,
		Tobacco:   in.Tobacco,
		Drinking:  in.Drinking,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(medicalColumns),
	}).Create(&details).Error
	if err != nil {
		return nil, internal("failed to save medical details", err)
	}

	return toMedicalResponse(user, &details), nil
}

// Get returns the medical details of the patient identified by (phone, name).
// A patient without recorded details gets empty lists and false flags.
func (s *MedicalService) Get(ctx context.Context, phone, name string) (*model.MedicalDetailsResponse, error) {
	user, err := findUser(ctx, s.db, phone, name)
	if err != nil {
		return nil, err
	}
	return toMedicalResponse(user, user.Details), nil
}

func toMedicalResponse(user *model.User, d *model.Details) *model.MedicalDetailsResponse {
	resp := &model.MedicalDetailsResponse{
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Allergies:   []string{},
		Illnesses:   []string{},
	}
	if d != nil {
		resp.Allergies = d.AllergyList()
		resp.Illnesses = d.IllnessList()
		resp.Smoking = d.Smoking
		resp.Tobacco = d.Tobacco
		resp.Drinking = d.Drinking
	}
	return resp
}
