package model

import "time"

// Room is a single room of the property. A room may belong to one flat; deleting
// the flat leaves the room unassigned.
type Room struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Number      string    `json:"number" gorm:"column:number;size:50;not null;uniqueIndex"`
	Description *string   `json:"description" gorm:"column:description;size:200"`
	FlatID      *uint     `json:"flat_id" gorm:"column:flat_id;index"`
	Flat        *Flat     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListRoomResponse is a room with the number of the flat it is assigned to.
type ListRoomResponse struct {
	ID          uint    `json:"id" gorm:"column:id"`
	Number      string  `json:"number" gorm:"column:number"`
	Description *string `json:"description" gorm:"column:description"`
	FlatNumber  *string `json:"flat_number" gorm:"column:flat_number"`
}

// OptionalText returns nil for an empty value so the column stores NULL.
func OptionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
