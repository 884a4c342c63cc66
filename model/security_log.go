package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SecurityLog is a persisted audit event.
type SecurityLog struct {
	gorm.Model
	EventType   string `json:"event_type" gorm:"column:event_type;type:varchar(64);index"`
	UserID      string `json:"user_id" gorm:"column:user_id;type:varchar(64);index"`
	PhoneNumber string `json:"phonenumber" gorm:"column:phone_number;type:varchar(32);index"`
	Role        string `json:"role" gorm:"column:role;type:varchar(16)"`
	IP          string `json:"ip" gorm:"column:ip;type:varchar(45)"`
	// Location is "City/Country" when the GeoIP lookup succeeds.
	Location  string         `json:"location" gorm:"column:location;type:varchar(255)"`
	UserAgent string         `json:"user_agent" gorm:"column:user_agent;type:varchar(512)"`
	Message   string         `json:"message" gorm:"column:message;type:text"`
	Details   datatypes.JSON `json:"details" gorm:"column:details"`
}

// AllModels returns every model managed by migrations, parents first.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Details{},
		&Complaint{},
		&FollowUp{},
		&Treatment{},
		&Prescription{},
		&Allergy{},
		&MedicalCondition{},
		&SecurityLog{},
	}
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
