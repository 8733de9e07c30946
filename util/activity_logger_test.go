package util

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ariebrainware/clinic-desk/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newActivityTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:activity_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.ActivityLog{}))
	return db
}

// setupTestLogger captures the process logger output for assertions
func setupTestLogger(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	t.Cleanup(SetLoggerOutputForTest(buf))
	return buf
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"removes newlines", "hello\nworld", "hello world"},
		{"removes carriage returns", "hello\rworld", "hello world"},
		{"removes tabs", "hello\tworld", "hello world"},
		{"truncates long values", strings.Repeat("a", 250), strings.Repeat("a", 200) + "..."},
		{"handles normal strings", "normal string", "normal string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeLogValue(tt.input))
		})
	}
}

func TestActivityLogger_PersistsEvents(t *testing.T) {
	buf := setupTestLogger(t)
	db := newActivityTestDB(t)
	a := NewActivityLogger(db)

	a.LogRecordAdded("action-1", "patient", 3)
	a.Log(ActivityEvent{
		EventType: EventMenuAction,
		ActionID:  "action-2",
		Message:   "Patient Management > Add Patient",
		Details:   map[string]interface{}{"duration_ms": 4},
	})

	var logs []model.ActivityLog
	require.NoError(t, db.Order("id").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, string(EventRecordAdded), logs[0].EventType)
	assert.Equal(t, "patient", logs[0].Entity)
	assert.Equal(t, uint(3), logs[0].RecordID)
	assert.Equal(t, a.SessionID(), logs[0].SessionID)
	assert.JSONEq(t, `{"duration_ms":4}`, string(logs[1].Details))

	assert.Contains(t, buf.String(), "event=RECORD_ADDED")
	assert.Contains(t, buf.String(), "patient 3 added")
}

func TestActivityLogger_RecentSkipsMenuActions(t *testing.T) {
	setupTestLogger(t)
	a := NewActivityLogger(newActivityTestDB(t))

	a.LogRecordAdded("a1", "doctor", 1)
	a.Log(ActivityEvent{EventType: EventMenuAction, Message: "menu"})
	a.LogRecordUpdated("a2", "doctor", 1)
	a.LogRecordDeleted("a3", "doctor", 1)

	recent, err := a.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, string(EventRecordDeleted), recent[0].EventType)
	assert.Equal(t, string(EventRecordUpdated), recent[1].EventType)
}

func TestActivityLogger_NilAndStoreless(t *testing.T) {
	buf := setupTestLogger(t)

	var nilLogger *ActivityLogger
	nilLogger.LogRecordAdded("x", "room", 1)
	assert.Empty(t, nilLogger.SessionID())

	storeless := NewActivityLogger(nil)
	storeless.LogRecordDeleted("y", "room", 2)
	assert.Contains(t, buf.String(), "room 2 deleted")

	_, err := storeless.Recent(5)
	assert.Error(t, err)
}

func TestActivityLogger_SanitizesMessage(t *testing.T) {
	setupTestLogger(t)
	db := newActivityTestDB(t)
	a := NewActivityLogger(db)

	a.Log(ActivityEvent{EventType: EventRecordAdded, Message: "line1\nline2"})

	var entry model.ActivityLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "line1 line2", entry.Message)
}
