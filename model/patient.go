package model

import "time"

// Gender symbols accepted for a patient.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// Patient is a registered clinic patient. Deleting a patient removes its appointments.
type Patient struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName  string    `json:"full_name" gorm:"column:full_name;not null"`
	Age       int       `json:"age" gorm:"column:age;check:age > 0"`
	Weight    float64   `json:"weight" gorm:"column:weight;check:weight > 0"`
	Address   string    `json:"address" gorm:"column:address"`
	Contact   string    `json:"contact" gorm:"column:contact;size:10;not null"`
	Gender    string    `json:"gender" gorm:"column:gender;size:1;check:gender IN ('M','F','O')"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PatientFields are the values collected for an add or a full re-entry edit.
type PatientFields struct {
	FullName string
	Age      int
	Weight   float64
	Address  string
	Contact  string
	Gender   string
}

// Updates returns the column map written by an edit.
func (f PatientFields) Updates() map[string]interface{} {
	return map[string]interface{}{
		"full_name": f.FullName,
		"age":       f.Age,
		"weight":    f.Weight,
		"address":   f.Address,
		"contact":   f.Contact,
		"gender":    f.Gender,
	}
}

// NewPatient builds the row inserted by an add.
func NewPatient(f PatientFields) Patient {
	return Patient{
		FullName: f.FullName,
		Age:      f.Age,
		Weight:   f.Weight,
		Address:  f.Address,
		Contact:  f.Contact,
		Gender:   f.Gender,
	}
}
