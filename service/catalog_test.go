package service

import (
	"context"
	"testing"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreatments(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t))
	ctx := context.Background()

	scaling, err := svc.CreateTreatment(ctx, "  Scaling ", 1500)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, scaling.ID)
	assert.Equal(t, "Scaling", scaling.Name)

	_, err = svc.CreateTreatment(ctx, "Extraction", 800)
	require.NoError(t, err)

	_, err = svc.CreateTreatment(ctx, "Scaling", 2000)
	assert.Equal(t, KindConflict, KindOf(err))

	_, err = svc.CreateTreatment(ctx, "Whitening", -1)
	assert.Equal(t, KindBadRequest, KindOf(err))

	list, err := svc.Treatments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Extraction", list[0].Name)

	name, err := svc.DeleteTreatment(ctx, scaling.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Scaling", name)

	_, err = svc.DeleteTreatment(ctx, scaling.ID.String())
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = svc.DeleteTreatment(ctx, "not-a-uuid")
	assert.Equal(t, KindNotFound, KindOf(err))

	// a deleted name can be reused
	_, err = svc.CreateTreatment(ctx, "Scaling", 1600)
	assert.NoError(t, err)
}

func TestTreatments_EmptyCatalog(t *testing.T) {
	list, err := NewCatalogService(setupTestDB(t)).Treatments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestPrescriptions_GroupedByType(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t))
	ctx := context.Background()

	for _, in := range []PrescriptionInput{
		{Name: "Amoxicillin 500mg", Type: "Medication"},
		{Name: "Ibuprofen 400mg", Type: "medication"},
		{Name: "Warm saline rinse", Type: "instruction"},
	} {
		_, err := svc.CreatePrescription(ctx, in)
		require.NoError(t, err)
	}

	grouped, err := svc.Prescriptions(ctx)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["medication"], 2)
	assert.Equal(t, "Amoxicillin 500mg", grouped["medication"][0].Name)
	assert.Equal(t, "Warm saline rinse", grouped["instruction"][0].Name)
}

func TestPrescriptions_CreateValidation(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.CreatePrescription(ctx, PrescriptionInput{Name: "", Type: "medication"})
	assert.Equal(t, KindBadRequest, KindOf(err))

	_, err = svc.CreatePrescription(ctx, PrescriptionInput{Name: "Paracetamol", Type: " "})
	assert.Equal(t, KindBadRequest, KindOf(err))

	_, err = svc.CreatePrescription(ctx, PrescriptionInput{Name: "Paracetamol", Type: "medication"})
	require.NoError(t, err)
	_, err = svc.CreatePrescription(ctx, PrescriptionInput{Name: "Paracetamol", Type: "instruction"})
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestUpdateAndDeletePrescription(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)
	ctx := context.Background()

	amox, err := svc.CreatePrescription(ctx, PrescriptionInput{Name: "Amoxicillin", Type: "medication"})
	require.NoError(t, err)
	_, err = svc.CreatePrescription(ctx, PrescriptionInput{Name: "Ibuprofen", Type: "medication"})
	require.NoError(t, err)

	updated, err := svc.UpdatePrescription(ctx, amox.ID.String(), PrescriptionInput{Name: "Amoxicillin 250mg", Type: "Antibiotic"})
	require.NoError(t, err)
	assert.Equal(t, amox.ID, updated.ID)
	assert.Equal(t, "antibiotic", updated.Type)

	var stored model.Prescription
	require.NoError(t, db.First(&stored, "id = ?", amox.ID).Error)
	assert.Equal(t, "Amoxicillin 250mg", stored.Name)

	_, err = svc.UpdatePrescription(ctx, amox.ID.String(), PrescriptionInput{Name: "Ibuprofen", Type: "medication"})
	assert.Equal(t, KindConflict, KindOf(err))

	_, err = svc.UpdatePrescription(ctx, uuid.NewString(), PrescriptionInput{Name: "X", Type: "medication"})
	assert.Equal(t, KindNotFound, KindOf(err))

	name, err := svc.DeletePrescription(ctx, amox.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Amoxicillin 250mg", name)

	_, err = svc.DeletePrescription(ctx, amox.ID.String())
	assert.Equal(t, KindNotFound, KindOf(err))
}
