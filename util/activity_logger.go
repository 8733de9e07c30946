package util

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ariebrainware/clinic-desk/model"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityEventType represents different types of activity events
type ActivityEventType string

const (
	EventRecordAdded   ActivityEventType = "RECORD_ADDED"
	EventRecordUpdated ActivityEventType = "RECORD_UPDATED"
	EventRecordDeleted ActivityEventType = "RECORD_DELETED"
	EventMenuAction    ActivityEventType = "MENU_ACTION"
	EventActionPanic   ActivityEventType = "ACTION_PANIC"
)

// ActivityEvent represents an activity event to be logged
type ActivityEvent struct {
	EventType ActivityEventType
	ActionID  string
	Entity    string
	RecordID  uint
	Message   string
	Details   map[string]interface{}
}

// ActivityLogger writes activity events to the process log and, when a store is
// attached, to the activity_logs table. Persisting is best-effort.
type ActivityLogger struct {
	db        *gorm.DB
	sessionID string
}

// NewActivityLogger returns a logger for one console session. db may be nil.
func NewActivityLogger(db *gorm.DB) *ActivityLogger {
	return &ActivityLogger{db: db, sessionID: uuid.NewString()}
}

// SessionID identifies the console session the events belong to.
func (a *ActivityLogger) SessionID() string {
	if a == nil {
		return ""
	}
	return a.sessionID
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// Log records an event. A nil logger drops the event.
func (a *ActivityLogger) Log(event ActivityEvent) {
	if a == nil {
		return
	}

	fields := log.Fields{
		"event":      string(event.EventType),
		"session_id": a.sessionID,
		"action_id":  event.ActionID,
		"entity":     event.Entity,
	}
	if event.RecordID != 0 {
		fields["record_id"] = event.RecordID
	}
	if len(event.Details) > 0 {
		fields["details_count"] = len(event.Details)
	}
	logger.WithFields(fields).Info(sanitizeLogValue(event.Message))

	if a.db == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	entry := model.ActivityLog{
		SessionID: a.sessionID,
		ActionID:  event.ActionID,
		EventType: string(event.EventType),
		Entity:    event.Entity,
		RecordID:  event.RecordID,
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}
	if err := a.db.Create(&entry).Error; err != nil {
		logger.WithError(err).Warn("failed to persist activity event")
	}
}

// LogRecordAdded logs a successful insert
func (a *ActivityLogger) LogRecordAdded(actionID, entity string, id uint) {
	a.Log(ActivityEvent{
		EventType: EventRecordAdded,
		ActionID:  actionID,
		Entity:    entity,
		RecordID:  id,
		Message:   fmt.Sprintf("%s %d added", entity, id),
	})
}

// LogRecordUpdated logs a successful update
func (a *ActivityLogger) LogRecordUpdated(actionID, entity string, id uint) {
	a.Log(ActivityEvent{
		EventType: EventRecordUpdated,
		ActionID:  actionID,
		Entity:    entity,
		RecordID:  id,
		Message:   fmt.Sprintf("%s %d updated", entity, id),
	})
}

// LogRecordDeleted logs a successful delete
func (a *ActivityLogger) LogRecordDeleted(actionID, entity string, id uint) {
	a.Log(ActivityEvent{
		EventType: EventRecordDeleted,
		ActionID:  actionID,
		Entity:    entity,
		RecordID:  id,
		Message:   fmt.Sprintf("%s %d deleted", entity, id),
	})
}

// Recent returns the latest persisted record events, newest first. Menu actions are left out.
func (a *ActivityLogger) Recent(limit int) ([]model.ActivityLog, error) {
	if a == nil || a.db == nil {
		return nil, fmt.Errorf("activity store not available")
	}
	var logs []model.ActivityLog
	err := a.db.Where("event_type <> ?", string(EventMenuAction)).
		Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
