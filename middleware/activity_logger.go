package middleware

import (
	"fmt"
	"time"

	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/util"
)

// ActivityLogger gives actions the activity recorder and logs each finished
// action with its menu path and duration.
func ActivityLogger(a *util.ActivityLogger) console.HandlerFunc {
	return func(c *console.Context) {
		c.Set(activityKey, a)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		details := map[string]interface{}{
			"path":        c.Path,
			"duration_ms": duration.Milliseconds(),
		}
		if len(c.Errors) > 0 {
			errs := make([]string, 0, len(c.Errors))
			for _, err := range c.Errors {
				errs = append(errs, err.Error())
			}
			details["errors"] = errs
		}

		a.Log(util.ActivityEvent{
			EventType: util.EventMenuAction,
			ActionID:  GetActionID(c),
			Message:   fmt.Sprintf("%s (%d errors)", c.Path, len(c.Errors)),
			Details:   details,
		})
	}
}

// GetActivity returns the recorder set by ActivityLogger. A nil recorder drops events.
func GetActivity(c *console.Context) *util.ActivityLogger {
	v, ok := c.Get(activityKey)
	if !ok {
		return nil
	}
	a, _ := v.(*util.ActivityLogger)
	return a
}
