package model

import (
	"time"
)

// Complaint is one visit request. Date is the clinic-local calendar date of
// creation; Time is the UTC instant. A complaint is active on the day it was made.
// @Description Complaint information
type Complaint struct {
	ID             uint      `json:"id" gorm:"primaryKey" example:"1"`
	UserID         uint      `json:"user_id" gorm:"not null;index" example:"1"`
	User           User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ChiefComplaint string    `json:"chief_complaint" gorm:"type:text;not null" example:"Toothache"`
	Date           string    `json:"date" gorm:"column:complaint_date;type:varchar(10);not null;index" example:"2025-01-15"`
	Time           time.Time `json:"time" gorm:"column:complaint_time;not null"`
	CreatedAt      time.Time `json:"-"`
}

// FollowUp is a scheduled revisit for a complaint.
// @Description Follow-up information
type FollowUp struct {
	ID          uint       `json:"id" gorm:"primaryKey" example:"1"`
	ComplaintID uint       `json:"complaint_id" gorm:"not null;index" example:"1"`
	Complaint   Complaint  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null" example:"Root canal, second sitting"`
	Date        string     `json:"date" gorm:"column:followup_date;type:varchar(10);not null;index" example:"2025-01-22"`
	Time        string     `json:"time" gorm:"column:followup_time;type:varchar(5);not null" example:"10:30"`
	RemindedAt  *time.Time `json:"reminded_at,omitempty"`
	CreatedAt   time.Time  `json:"-"`
}

// TableName keeps the table name readable.
func (FollowUp) TableName() string {
	return "followups"
}

// QueueEntry is a complaint as shown on the day's queue.
// @Description Complaint queue entry
type QueueEntry struct {
	ComplaintID    uint   `json:"id" example:"1"`
	Name           string `json:"name" example:"Jane Doe"`
	Age            int    `json:"age" example:"35"`
	PhoneNumber    string `json:"phonenumber" example:"9999999999"`
	Time           string `json:"time" example:"10:30"`
	ChiefComplaint string `json:"chief_complaint" example:"Toothache"`
}

// FollowUpEntry is a follow-up as listed for a given date.
// @Description Follow-up list entry
type FollowUpEntry struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"Jane Doe"`
	Age         int    `json:"age" example:"35"`
	PhoneNumber string `json:"phonenumber" example:"9999999999"`
	Time        string `json:"time" example:"10:30"`
	Title       string `json:"followup" example:"Root canal, second sitting"`
}
