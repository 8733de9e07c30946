package model

import "time"

// Appointment books a patient with a doctor at a date and time.
// Both parents cascade their deletes onto it.
type Appointment struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Token           string    `json:"token" gorm:"column:token;size:32;uniqueIndex"`
	PatientID       uint      `json:"patient_id" gorm:"column:patient_id;not null;index"`
	Patient         *Patient  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	DoctorID        uint      `json:"doctor_id" gorm:"column:doctor_id;not null;index"`
	Doctor          *Doctor   `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AppointmentDate string    `json:"appointment_date" gorm:"column:appointment_date;size:10;not null;index"`
	AppointmentTime string    `json:"appointment_time" gorm:"column:appointment_time;size:5;not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AppointmentFields are the values collected by schedule and edit.
type AppointmentFields struct {
	PatientID       uint
	DoctorID        uint
	AppointmentDate string
	AppointmentTime string
}

func (f AppointmentFields) Updates() map[string]interface{} {
	return map[string]interface{}{
		"patient_id":       f.PatientID,
		"doctor_id":        f.DoctorID,
		"appointment_date": f.AppointmentDate,
		"appointment_time": f.AppointmentTime,
	}
}

// ListAppointmentResponse is an appointment joined with the names of its patient and doctor.
type ListAppointmentResponse struct {
	ID              uint   `json:"id" gorm:"column:id"`
	Token           string `json:"token" gorm:"column:token"`
	PatientID       uint   `json:"patient_id" gorm:"column:patient_id"`
	PatientName     string `json:"patient_name" gorm:"column:patient_name"`
	DoctorID        uint   `json:"doctor_id" gorm:"column:doctor_id"`
	DoctorName      string `json:"doctor_name" gorm:"column:doctor_name"`
	Specialization  string `json:"specialization" gorm:"column:specialization"`
	AppointmentDate string `json:"appointment_date" gorm:"column:appointment_date"`
	AppointmentTime string `json:"appointment_time" gorm:"column:appointment_time"`
}
