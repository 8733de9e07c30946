package endpoint

import (
	"fmt"

	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/middleware"
	"github.com/ariebrainware/clinic-desk/util"
)

const recentActivityLimit = 20

// ViewActivity lists the latest record changes of every session.
func ViewActivity(c *console.Context) {
	logs, err := middleware.GetActivity(c).Recent(recentActivityLimit)
	if err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to fetch recent activity", Err: err})
		return
	}

	fmt.Fprintln(c.Out, "\n--- Recent Activity ---")
	if len(logs) == 0 {
		fmt.Fprintln(c.Out, "No activity recorded yet.")
		return
	}

	fmt.Fprintf(c.Out, "%-20s %-15s %-12s %-7s %s\n", "Time", "Event", "Entity", "Record", "Message")
	for _, l := range logs {
		fmt.Fprintf(c.Out, "%-20s %-15s %-12s %-7d %s\n",
			l.CreatedAt.Format("2006-01-02 15:04:05"), l.EventType, l.Entity, l.RecordID, l.Message)
	}
}
