package model

import "time"

// Doctor represents a doctor entity
type Doctor struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName       string    `json:"full_name" gorm:"column:full_name;not null"`
	Specialization string    `json:"specialization" gorm:"column:specialization;not null"`
	Contact        string    `json:"contact" gorm:"column:contact;size:10;not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DoctorFields struct {
	FullName       string
	Specialization string
	Contact        string
}

func (f DoctorFields) Updates() map[string]interface{} {
	return map[string]interface{}{
		"full_name":      f.FullName,
		"specialization": f.Specialization,
		"contact":        f.Contact,
	}
}

func NewDoctor(f DoctorFields) Doctor {
	return Doctor{
		FullName:       f.FullName,
		Specialization: f.Specialization,
		Contact:        f.Contact,
	}
}
