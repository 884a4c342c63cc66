package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ariebrainware/dentist-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRegisterPatient(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db, fixedClock())

	u, err := svc.Register(context.Background(), RegisterPatientInput{
		PhoneNumber: "9999999999",
		Name:        "  jane   DOE ",
		DateOfBirth: "1990-01-01",
		Address:     "X",
		Gender:      model.GenderFemale,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", u.Name)
	assert.Equal(t, model.RolePatient, u.Role)
	assert.False(t, u.HasPassword())
	require.NotNil(t, u.Details)
	assert.Equal(t, u.ID, u.Details.UserID)

	var count int64
	require.NoError(t, db.Model(&model.Details{}).Where("user_id = ?", u.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterPatient_DuplicateIsConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db, fixedClock())
	in := RegisterPatientInput{PhoneNumber: "9999999999", Name: "Jane Doe", DateOfBirth: "1990-01-01", Address: "X", Gender: model.GenderFemale}

	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))

	var users int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}

func TestRegisterPatient_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db, fixedClock())
	base := RegisterPatientInput{PhoneNumber: "9999999999", Name: "Jane Doe", DateOfBirth: "1990-01-01", Address: "X", Gender: model.GenderFemale}

	tests := []struct {
		name   string
		mutate func(in *RegisterPatientInput)
	}{
		{name: "short phone", mutate: func(in *RegisterPatientInput) { in.PhoneNumber = "12345" }},
		{name: "blank name", mutate: func(in *RegisterPatientInput) { in.Name = "   " }},
		{name: "future birth date", mutate: func(in *RegisterPatientInput) { in.DateOfBirth = "2030-01-01" }},
		{name: "bad birth date", mutate: func(in *RegisterPatientInput) { in.DateOfBirth = "1/1/1990" }},
		{name: "unknown gender", mutate: func(in *RegisterPatientInput) { in.Gender = "X" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			assert.Equal(t, KindBadRequest, KindOf(err))
		})
	}
}

func TestRegisterPatient_DetailsFailureRollsBackUser(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `details").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err = NewPatientService(db, fixedClock()).Register(context.Background(), RegisterPatientInput{
		PhoneNumber: "9999999999",
		Name:        "Jane Doe",
		DateOfBirth: "1990-01-01",
		Address:     "X",
		Gender:      model.GenderFemale,
	})
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPatients(t *testing.T) {
	db := setupTestDB(t)
	registerPatient(t, db, "9999999999", "Zara Khan", "2000-03-11")
	registerPatient(t, db, "9999999999", "Amit Khan", "1990-03-10")
	registerPatient(t, db, "8888888888", "Ravi Iyer", "1985-12-01")
	require.NoError(t, db.Create(&model.User{PhoneNumber: "7777777777", Name: "Dr Rao", Role: model.RoleDentist}).Error)

	svc := NewPatientService(db, fixedClock())

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Amit Khan", all[0].Name)
	assert.Equal(t, 35, all[0].Age)
	assert.Equal(t, 24, all[2].Age)

	family, err := svc.ByPhoneNumber(context.Background(), "9999999999")
	require.NoError(t, err)
	assert.Len(t, family, 2)

	_, err = svc.ByPhoneNumber(context.Background(), "7777777777")
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = svc.ByPhoneNumber(context.Background(), "123")
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestFindUser_NormalizesName(t *testing.T) {
	db := setupTestDB(t)
	registerPatient(t, db, "9999999999", "Jane Doe", "1990-01-01")

	u, err := NewPatientService(db, fixedClock()).FindUser(context.Background(), "9999999999", "jane doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", u.Name)

	_, err = NewPatientService(db, fixedClock()).FindUser(context.Background(), "9999999999", "John Doe")
	assert.Equal(t, KindNotFound, KindOf(err))
}
