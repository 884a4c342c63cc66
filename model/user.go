package model

import (
	"gorm.io/gorm"
)

// User is an account identified by the (phonenumber, name) pair.
// @Description User account
type User struct {
	gorm.Model
	PhoneNumber string   `json:"phonenumber" gorm:"column:phone_number;type:varchar(10);not null;uniqueIndex:idx_users_phone_name,priority:1" example:"9999999999"`
	Name        string   `json:"name" gorm:"type:varchar(191);not null;uniqueIndex:idx_users_phone_name,priority:2" example:"Jane Doe"`
	Role        Role     `json:"role" gorm:"type:varchar(16);not null;default:patient" example:"patient"`
	Password    string   `json:"-" gorm:"type:varchar(255)"`
	Details     *Details `json:"details,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// HasPassword reports whether the account has been claimed through signup.
func (u User) HasPassword() bool {
	return u.Password != ""
}

// PatientResponse is a patient as returned by the patients endpoints.
// @Description Patient information
type PatientResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"Jane Doe"`
	PhoneNumber string `json:"phonenumber" example:"9999999999"`
	DateOfBirth string `json:"date_of_birth" example:"1990-01-01"`
	Age         int    `json:"age" example:"35"`
	Address     string `json:"address" example:"12 MG Road"`
	Gender      Gender `json:"gender" example:"F"`
}
