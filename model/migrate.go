package model

import (
	"fmt"

	"gorm.io/gorm"
)

// ClinicModels are the tables of the clinic program, parents first.
func ClinicModels() []interface{} {
	return []interface{}{&Patient{}, &Doctor{}, &Appointment{}, &AppointmentToken{}, &ActivityLog{}}
}

// RentalModels are the tables of the rental program, parents first.
func RentalModels() []interface{} {
	return []interface{}{&Flat{}, &Room{}, &ActivityLog{}}
}

// Migrate creates the given tables when absent. Existing tables are never altered
// beyond what AutoMigrate adds.
func Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
