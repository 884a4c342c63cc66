package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Allergy is a known allergy offered to the front desk as a suggestion.
type Allergy struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(191);not null;uniqueIndex"`
}

// MedicalCondition is a known illness offered as a suggestion.
type MedicalCondition struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(191);not null;uniqueIndex"`
}

var defaultAllergies = []string{
	"Penicillin", "Sulfa drugs", "Aspirin", "Ibuprofen", "Local anaesthetic",
	"Latex", "Iodine", "Codeine", "Peanuts", "Shellfish",
}

var defaultMedicalConditions = []string{
	"Diabetes", "Hypertension", "Asthma", "Heart disease", "Epilepsy",
	"Thyroid disorder", "Hepatitis", "HIV", "Bleeding disorder", "Pregnancy",
}

// SeedReferenceData inserts the default allergies and medical conditions that are missing.
func SeedReferenceData(db *gorm.DB) error {
	for _, name := range defaultAllergies {
		if err := seedByName(db, &Allergy{}, &Allergy{Name: name}, name); err != nil {
			return fmt.Errorf("failed to seed allergy %s: %w", name, err)
		}
	}
	for _, name := range defaultMedicalConditions {
		if err := seedByName(db, &MedicalCondition{}, &MedicalCondition{Name: name}, name); err != nil {
			return fmt.Errorf("failed to seed medical condition %s: %w", name, err)
		}
	}
	return nil
}

func seedByName(db *gorm.DB, probe, row interface{}, name string) error {
	err := db.Where("name = ?", name).First(probe).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(row).Error
}
