package model

import "gorm.io/gorm"

// AppointmentToken is the per-day counter behind appointment token numbers.
// Code holds the last token handed out for Day.
type AppointmentToken struct {
	gorm.Model
	Day    string `json:"day" gorm:"size:10;uniqueIndex"`
	Number int    `json:"number"`
	Code   string `json:"code" gorm:"size:32"`
}
