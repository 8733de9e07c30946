package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupPatientTestDB(t *testing.T) *gorm.DB {
	return setupTestDB(t, "patient", ClinicModels()...)
}

func validPatient() Patient {
	return NewPatient(PatientFields{
		FullName: "JOHN DOE",
		Age:      34,
		Weight:   70.5,
		Address:  "12 MAIN ST",
		Contact:  "9876543210",
		Gender:   GenderMale,
	})
}

func TestPatientModel_Create(t *testing.T) {
	db := setupPatientTestDB(t)

	patient := validPatient()
	err := db.Create(&patient).Error
	assert.NoError(t, err)
	assert.NotZero(t, patient.ID)
}

func TestPatientModel_Read(t *testing.T) {
	db := setupPatientTestDB(t)

	patient := validPatient()
	db.Create(&patient)

	var found Patient
	err := db.First(&found, patient.ID).Error
	assert.NoError(t, err)
	assert.Equal(t, "JOHN DOE", found.FullName)
	assert.Equal(t, 70.5, found.Weight)
	assert.Equal(t, "M", found.Gender)
}

func TestPatientModel_UpdateWithFields(t *testing.T) {
	db := setupPatientTestDB(t)

	patient := validPatient()
	db.Create(&patient)

	fields := PatientFields{FullName: "JANE DOE", Age: 35, Weight: 60, Address: "5 ELM ST", Contact: "0123456789", Gender: GenderFemale}
	res := db.Model(&Patient{}).Where("id = ?", patient.ID).Updates(fields.Updates())
	assert.NoError(t, res.Error)
	assert.Equal(t, int64(1), res.RowsAffected)

	var updated Patient
	db.First(&updated, patient.ID)
	assert.Equal(t, "JANE DOE", updated.FullName)
	assert.Equal(t, 35, updated.Age)
	assert.Equal(t, "F", updated.Gender)
}

func TestPatientModel_DeleteIsPermanent(t *testing.T) {
	db := setupPatientTestDB(t)

	patient := validPatient()
	db.Create(&patient)

	res := db.Delete(&Patient{}, patient.ID)
	assert.NoError(t, res.Error)
	assert.Equal(t, int64(1), res.RowsAffected)

	var count int64
	db.Unscoped().Model(&Patient{}).Where("id = ?", patient.ID).Count(&count)
	assert.Zero(t, count)
}

func TestPatientModel_CheckConstraints(t *testing.T) {
	db := setupPatientTestDB(t)

	tests := []struct {
		name   string
		mutate func(p *Patient)
	}{
		{"non-positive age", func(p *Patient) { p.Age = 0 }},
		{"non-positive weight", func(p *Patient) { p.Weight = -1 }},
		{"unknown gender", func(p *Patient) { p.Gender = "X" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPatient()
			tt.mutate(&p)
			assert.Error(t, db.Create(&p).Error)
		})
	}
}

func TestPatientModel_IDsNotReused(t *testing.T) {
	db := setupPatientTestDB(t)

	first := validPatient()
	db.Create(&first)
	db.Delete(&Patient{}, first.ID)

	second := validPatient()
	db.Create(&second)
	assert.Greater(t, second.ID, first.ID)
}

func TestPatientModel_Timestamps(t *testing.T) {
	db := setupPatientTestDB(t)

	patient := validPatient()
	db.Create(&patient)

	assert.NotZero(t, patient.CreatedAt)
	assert.NotZero(t, patient.UpdatedAt)
}
