package service

import (
	"context"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"gorm.io/gorm"
)

const (
	msgUserNotFound   = "User not found"
	msgAccountExists  = "Account exists for this name and phonenumber"
	msgNoPatientFound = "No patient found with this phonenumber"
)

// PatientService registers and looks up patients.
type PatientService struct {
	db    *gorm.DB
	clock Clock
}

// NewPatientService returns a PatientService.
func NewPatientService(db *gorm.DB, clock Clock) *PatientService {
	return &PatientService{db: db, clock: clock}
}

// RegisterPatientInput is a front-desk registration.
type RegisterPatientInput struct {
	PhoneNumber string
	Name        string
	DateOfBirth string
	Address     string
	Gender      model.Gender
}

func (s *PatientService) validateRegistration(in *RegisterPatientInput) error {
	if v := util.ValidatePhoneNumber(in.PhoneNumber); !v.Valid {
		return badRequest(v.Error)
	}
	in.Name = util.CapitalizeName(in.Name)
	if v := util.ValidateRequired("name", in.Name); !v.Valid {
		return badRequest(v.Error)
	}
	if v := util.ValidateDateOfBirth(in.DateOfBirth, s.clock.Local()); !v.Valid {
		return badRequest(v.Error)
	}
	if v := util.ValidateGender(string(in.Gender)); !v.Valid {
		return badRequest(v.Error)
	}
	return nil
}

// Register creates the patient account and its details in one transaction.
// A failure on either insert leaves neither row behind.
func (s *PatientService) Register(ctx context.Context, in RegisterPatientInput) (*model.User, error) {
	if err := s.validateRegistration(&in); err != nil {
		return nil, err
	}

	user := model.User{
		PhoneNumber: in.PhoneNumber,
		Name:        in.Name,
		Role:        model.RolePatient,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Details").Create(&user).Error; err != nil {
			return err
		}
		details := model.Details{
			UserID:      user.ID,
			DateOfBirth: in.DateOfBirth,
			Address:     in.Address,
			Gender:      in.Gender,
		}
		if err := tx.Create(&details).Error; err != nil {
			return err
		}
		user.Details = &details
		return nil
	})
	if err != nil {
		return nil, storeError(err, msgAccountExists, msgUserNotFound)
	}
	return &user, nil
}

// FindUser returns the user identified by (phone, name), with details when present.
func (s *PatientService) FindUser(ctx context.Context, phone, name string) (*model.User, error) {
	return findUser(ctx, s.db, phone, name)
}

func findUser(ctx context.Context, db *gorm.DB, phone, name string) (*model.User, error) {
	var user model.User
	err := db.WithContext(ctx).
		Preload("Details").
		Where("phone_number = ? AND name = ?", phone, util.CapitalizeName(name)).
		First(&user).Error
	if err != nil {
		return nil, storeError(err, msgAccountExists, msgUserNotFound)
	}
	return &user, nil
}

// List returns every patient ordered by name.
func (s *PatientService) List(ctx context.Context) ([]model.PatientResponse, error) {
	var users []model.User
	err := s.db.WithContext(ctx).
		Preload("Details").
		Where("role = ?", model.RolePatient).
		Order("name").
		Find(&users).Error
	if err != nil {
		return nil, internal("failed to list patients", err)
	}
	return s.toResponses(users), nil
}

// ByPhoneNumber returns the patients sharing phone. Families often share one number.
func (s *PatientService) ByPhoneNumber(ctx context.Context, phone string) ([]model.PatientResponse, error) {
	if v := util.ValidatePhoneNumber(phone); !v.Valid {
		return nil, badRequest(v.Error)
	}
	var users []model.User
	err := s.db.WithContext(ctx).
		Preload("Details").
		Where("phone_number = ? AND role = ?", phone, model.RolePatient).
		Order("name").
		Find(&users).Error
	if err != nil {
		return nil, internal("failed to fetch patient", err)
	}
	if len(users) == 0 {
		return nil, notFound(msgNoPatientFound)
	}
	return s.toResponses(users), nil
}

func (s *PatientService) toResponses(users []model.User) []model.PatientResponse {
	now := s.clock.Local()
	out := make([]model.PatientResponse, 0, len(users))
	for _, u := range users {
		r := model.PatientResponse{ID: u.ID, Name: u.Name, PhoneNumber: u.PhoneNumber}
		if u.Details != nil {
			r.DateOfBirth = u.Details.DateOfBirth
			r.Age = u.Details.Age(now)
			r.Address = u.Details.Address
			r.Gender = u.Details.Gender
		}
		out = append(out, r)
	}
	return out
}
