package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var clinicZone = time.FixedZone("IST", 5*3600+1800)

// fixedClock returns a clock pinned to 2025-03-10 10:15 clinic time.
func fixedClock() Clock {
	at := time.Date(2025, time.March, 10, 10, 15, 0, 0, clinicZone)
	return Clock{Location: clinicZone, Now: func() time.Time { return at }}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))
	return db
}

func registerPatient(t *testing.T, db *gorm.DB, phone, name, dob string) *model.User {
	t.Helper()
	u, err := NewPatientService(db, fixedClock()).Register(context.Background(), RegisterPatientInput{
		PhoneNumber: phone,
		Name:        name,
		DateOfBirth: dob,
		Address:     "12 MG Road",
		Gender:      model.GenderFemale,
	})
	require.NoError(t, err)
	return u
}

type recordingPublisher struct {
	entries []model.QueueEntry
}

func (p *recordingPublisher) Publish(e model.QueueEntry) {
	p.entries = append(p.entries, e)
}
