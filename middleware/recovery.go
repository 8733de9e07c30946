package middleware

import (
	"fmt"

	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/util"
)

// Recovery turns a panic inside an action into an error line so the session continues.
func Recovery() console.HandlerFunc {
	return func(c *console.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err := fmt.Errorf("action panicked: %v", r)
			c.Error(err)
			util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Unexpected error", Err: err})
			GetActivity(c).Log(util.ActivityEvent{
				EventType: util.EventActionPanic,
				ActionID:  GetActionID(c),
				Message:   c.Path,
			})
		}()
		c.Next()
	}
}
