package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog represents a persisted record operation or menu action.
type ActivityLog struct {
	gorm.Model
	SessionID string         `json:"session_id" gorm:"column:session_id;type:varchar(36);index"`
	ActionID  string         `json:"action_id" gorm:"column:action_id;type:varchar(36);index"`
	EventType string         `json:"event_type" gorm:"column:event_type;type:varchar(64)"`
	Entity    string         `json:"entity" gorm:"column:entity;type:varchar(32);index"`
	RecordID  uint           `json:"record_id" gorm:"column:record_id"`
	Message   string         `json:"message" gorm:"column:message;type:text"`
	Details   datatypes.JSON `json:"details" gorm:"column:details"`
}
