package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTreatment_AssignsUUID(t *testing.T) {
	db := setupTestDB(t, "treatment_uuid", &Treatment{})

	tr := Treatment{Name: "Scaling", Price: 1500}
	require.NoError(t, db.Create(&tr).Error)
	assert.NotEqual(t, uuid.Nil, tr.ID)

	var got Treatment
	require.NoError(t, db.First(&got, "id = ?", tr.ID).Error)
	assert.Equal(t, "Scaling", got.Name)
	assert.Equal(t, 1500.0, got.Price)
}

func TestTreatment_UniqueName(t *testing.T) {
	db := setupTestDB(t, "treatment_unique", &Treatment{})

	require.NoError(t, db.Create(&Treatment{Name: "Filling", Price: 800}).Error)
	err := db.Create(&Treatment{Name: "Filling", Price: 900}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPrescription_KeepsGivenID(t *testing.T) {
	db := setupTestDB(t, "prescription_id", &Prescription{})

	id := uuid.New()
	p := Prescription{ID: id, Name: "Amoxicillin 500mg", Type: "medication"}
	require.NoError(t, db.Create(&p).Error)
	assert.Equal(t, id, p.ID)
}
