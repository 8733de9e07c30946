package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAppointment(t *testing.T, db *gorm.DB) (Patient, Doctor, Appointment) {
	t.Helper()
	patient := validPatient()
	require.NoError(t, db.Create(&patient).Error)
	doctor := NewDoctor(DoctorFields{FullName: "DR. HOUSE", Specialization: "DIAGNOSTICS", Contact: "1112223334"})
	require.NoError(t, db.Create(&doctor).Error)
	appointment := Appointment{
		Token:           "20250115-001",
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: "2025-01-15",
		AppointmentTime: "09:30",
	}
	require.NoError(t, db.Create(&appointment).Error)
	return patient, doctor, appointment
}

func countAppointments(db *gorm.DB) int64 {
	var n int64
	db.Model(&Appointment{}).Count(&n)
	return n
}

func TestAppointmentModel_CreateDoesNotTouchParents(t *testing.T) {
	db := setupTestDB(t, "appointment_create", ClinicModels()...)

	patient, doctor, appointment := seedAppointment(t, db)
	assert.NotZero(t, appointment.ID)

	var patients, doctors int64
	db.Model(&Patient{}).Count(&patients)
	db.Model(&Doctor{}).Count(&doctors)
	assert.Equal(t, int64(1), patients)
	assert.Equal(t, int64(1), doctors)
	assert.Equal(t, patient.ID, appointment.PatientID)
	assert.Equal(t, doctor.ID, appointment.DoctorID)
}

func TestAppointmentModel_ForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t, "appointment_fk", ClinicModels()...)

	err := db.Create(&Appointment{
		Token:           "20250115-009",
		PatientID:       999,
		DoctorID:        999,
		AppointmentDate: "2025-01-15",
		AppointmentTime: "10:00",
	}).Error
	assert.Error(t, err)
	assert.Zero(t, countAppointments(db))
}

func TestAppointmentModel_DeletePatientCascades(t *testing.T) {
	db := setupTestDB(t, "appointment_cascade_patient", ClinicModels()...)

	patient, _, _ := seedAppointment(t, db)
	require.Equal(t, int64(1), countAppointments(db))

	require.NoError(t, db.Delete(&Patient{}, patient.ID).Error)
	assert.Zero(t, countAppointments(db))
}

func TestAppointmentModel_DeleteDoctorCascades(t *testing.T) {
	db := setupTestDB(t, "appointment_cascade_doctor", ClinicModels()...)

	_, doctor, _ := seedAppointment(t, db)
	require.NoError(t, db.Delete(&Doctor{}, doctor.ID).Error)
	assert.Zero(t, countAppointments(db))
}

func TestAppointmentModel_TokenUnique(t *testing.T) {
	db := setupTestDB(t, "appointment_token", ClinicModels()...)

	_, _, appointment := seedAppointment(t, db)
	dup := appointment
	dup.ID = 0
	assert.Error(t, db.Create(&dup).Error)
}

func TestListAppointmentResponse_Join(t *testing.T) {
	db := setupTestDB(t, "appointment_join", ClinicModels()...)

	seedAppointment(t, db)

	var rows []ListAppointmentResponse
	err := db.Table("appointments").
		Select("appointments.id, appointments.token, patients.full_name AS patient_name, doctors.full_name AS doctor_name").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Scan(&rows).Error
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "JOHN DOE", rows[0].PatientName)
	assert.Equal(t, "DR. HOUSE", rows[0].DoctorName)
}
