package model

import (
	"strings"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// TimeOfDayLayout is the wire format of clock times.
const TimeOfDayLayout = "15:04"

// Gender is stored as a single letter.
type Gender string

const (
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
	GenderTransgender Gender = "T"
	GenderOther       Gender = "O"
)

// Valid reports whether g is a known gender code.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderTransgender, GenderOther:
		return true
	}
	return false
}

// Details extends a User with personal and medical information.
// @Description Patient details
type Details struct {
	UserID      uint      `json:"-" gorm:"primaryKey;autoIncrement:false"`
	DateOfBirth string    `json:"date_of_birth" gorm:"type:varchar(10)" example:"1990-01-01"`
	Address     string    `json:"address" gorm:"type:text" example:"12 MG Road"`
	Gender      Gender    `json:"gender" gorm:"type:varchar(1)" example:"F"`
	Allergies   string    `json:"-" gorm:"type:text"`
	Illnesses   string    `json:"-" gorm:"type:text"`
	Smoking     bool      `json:"smoking" gorm:"not null;default:false"`
	Tobacco     bool      `json:"tobacco" gorm:"not null;default:false"`
	Drinking    bool      `json:"drinking" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// AllergyList returns the stored allergies as a list.
func (d Details) AllergyList() []string {
	return SplitList(d.Allergies)
}

// IllnessList returns the stored illnesses as a list.
func (d Details) IllnessList() []string {
	return SplitList(d.Illnesses)
}

// Age returns the completed years between the date of birth and now.
// It returns 0 when the date of birth is unknown or unparsable.
func (d Details) Age(now time.Time) int {
	return AgeOn(d.DateOfBirth, now)
}

// AgeOn computes the age in completed years of someone born on dob (YYYY-MM-DD) at now.
func AgeOn(dob string, now time.Time) int {
	born, err := time.Parse(DateLayout, dob)
	if err != nil {
		return 0
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// JoinList stores a list as comma-delimited text, dropping blank entries.
func JoinList(items []string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, ",")
}

// SplitList is the inverse of JoinList. Empty text yields an empty list.
func SplitList(text string) []string {
	out := []string{}
	for _, part := range strings.Split(text, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// MedicalDetailsResponse is the medical section of a patient's details.
// @Description Medical details
type MedicalDetailsResponse struct {
	Name        string   `json:"name" example:"Jane Doe"`
	PhoneNumber string   `json:"phonenumber" example:"9999999999"`
	Allergies   []string `json:"allergies" example:"Penicillin"`
	Illnesses   []string `json:"illnesses" example:"Diabetes"`
	Smoking     bool     `json:"smoking" example:"false"`
	Tobacco     bool     `json:"tobacco" example:"false"`
	Drinking    bool     `json:"drinking" example:"false"`
}
