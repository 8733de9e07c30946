package middleware

import (
	"github.com/ariebrainware/clinic-desk/console"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	dbKey       = "db"
	actionIDKey = "action_id"
	activityKey = "activity"
)

// Database injects the store handle into every action.
func Database(db *gorm.DB) console.HandlerFunc {
	return func(c *console.Context) {
		c.Set(dbKey, db)
		c.Next()
	}
}

// GetDB returns the store handle set by Database, or nil.
func GetDB(c *console.Context) *gorm.DB {
	v, ok := c.Get(dbKey)
	if !ok {
		return nil
	}
	db, _ := v.(*gorm.DB)
	return db
}

// ActionID tags every action invocation with a fresh id.
func ActionID() console.HandlerFunc {
	return func(c *console.Context) {
		c.Set(actionIDKey, uuid.NewString())
		c.Next()
	}
}

// GetActionID returns the id set by ActionID.
func GetActionID(c *console.Context) string {
	v, ok := c.Get(actionIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
