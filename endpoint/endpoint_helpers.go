package endpoint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/middleware"
	"github.com/ariebrainware/clinic-desk/util"
	"gorm.io/gorm"
)

// recordKind describes one entity table for the shared lookup and delete flows.
type recordKind struct {
	entity   string // activity log entity
	label    string // user facing name, e.g. "Patient"
	newModel func() interface{}
}

func requireDB(c *console.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return db, true
}

// inputAborted reports whether a prompt ended the flow. Empty required fields
// and bad ids were already explained by the collector. A store failure behind a
// prompt goes to the error stream and the session goes on; stream errors are
// recorded on the context so the navigator can end the session.
func inputAborted(c *console.Context, err error) bool {
	if err == nil {
		return false
	}

	var lookupErr *console.LookupError
	switch {
	case errors.Is(err, console.ErrEmptyField), errors.Is(err, console.ErrInvalidID):
	case errors.As(err, &lookupErr):
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: fmt.Sprintf("Failed to look up %s", strings.ToLower(lookupErr.Label)),
			Err: lookupErr.Err,
		})
	default:
		c.Error(err)
	}
	return true
}

func recordExists(db *gorm.DB, kind recordKind, id uint) (bool, error) {
	var count int64
	if err := db.Model(kind.newModel()).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func existsFunc(db *gorm.DB, kind recordKind) func(uint) (bool, error) {
	return func(id uint) (bool, error) {
		return recordExists(db, kind, id)
	}
}

// lookupID reads an id and re-checks that the record is present. It returns
// false after reporting why the operation cannot go on.
func lookupID(c *console.Context, db *gorm.DB, kind recordKind, prompt string) (uint, bool) {
	id, err := c.In.ID(prompt)
	if inputAborted(c, err) {
		return 0, false
	}

	exists, err := recordExists(db, kind, id)
	if err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: fmt.Sprintf("Failed to look up %s", kind.entity),
			Err: err,
		})
		return 0, false
	}
	if !exists {
		util.CallNotFound(c.Out, util.ErrorParams{
			Msg: fmt.Sprintf("%s with ID %d does not exist.", kind.label, id),
		})
		return 0, false
	}
	return id, true
}

// deleteRecord runs the shared delete flow: id, existence check, y/n confirmation, delete by id.
func deleteRecord(c *console.Context, kind recordKind) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintf(c.Out, "\n--- Delete %s ---\n", kind.label)
	id, ok := lookupID(c, db, kind, fmt.Sprintf("Enter %s ID to delete: ", kind.entity))
	if !ok {
		return
	}

	confirmed, err := c.In.Confirm(fmt.Sprintf("Are you sure you want to delete %s %d? (y/n): ", kind.entity, id))
	if inputAborted(c, err) {
		return
	}
	if !confirmed {
		fmt.Fprintln(c.Out, "Deletion cancelled.")
		return
	}

	res := db.Delete(kind.newModel(), id)
	if res.Error != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: fmt.Sprintf("Failed to delete %s", kind.entity),
			Err: res.Error,
		})
		return
	}
	if res.RowsAffected == 0 {
		util.CallUserError(c.Out, util.ErrorParams{
			Msg: fmt.Sprintf("No %s was deleted.", kind.entity),
		})
		return
	}

	middleware.GetActivity(c).LogRecordDeleted(middleware.GetActionID(c), kind.entity, id)
	util.CallSuccess(c.Out, fmt.Sprintf("%s deleted successfully.", kind.label))
}

// valueOrDash renders an optional column.
func valueOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// ComingSoon is the action behind the menu entries that are not built yet.
func ComingSoon(feature string) console.HandlerFunc {
	return func(c *console.Context) {
		fmt.Fprintf(c.Out, "\n%s feature coming soon!\n", feature)
	}
}
