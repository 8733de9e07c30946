package model

import "time"

// Flat is a rentable unit made of rooms.
type Flat struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Number      string    `json:"number" gorm:"column:number;size:50;not null;uniqueIndex"`
	Description *string   `json:"description" gorm:"column:description;size:200"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListFlatResponse is a flat with the number of rooms assigned to it.
type ListFlatResponse struct {
	ID          uint    `json:"id" gorm:"column:id"`
	Number      string  `json:"number" gorm:"column:number"`
	Description *string `json:"description" gorm:"column:description"`
	RoomCount   int64   `json:"room_count" gorm:"column:room_count"`
}
