package endpoint

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/middleware"
	"github.com/ariebrainware/clinic-desk/model"
	"github.com/ariebrainware/clinic-desk/util"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// setupEndpointTestDB opens a private in-memory store with foreign keys on and
// migrates the given models. Cleanup is registered via t.Cleanup().
func setupEndpointTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	restore := util.SetLoggerOutputForTest(io.Discard)
	t.Cleanup(restore)

	dsn := fmt.Sprintf("file:endpoint_%d_%d?mode=memory&cache=shared&_foreign_keys=1",
		time.Now().UnixNano(), dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, model.Migrate(db, models...))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func setupClinicDB(t *testing.T) *gorm.DB {
	t.Helper()
	return setupEndpointTestDB(t, model.ClinicModels()...)
}

func setupRentalDB(t *testing.T) *gorm.DB {
	t.Helper()
	return setupEndpointTestDB(t, model.RentalModels()...)
}

type actionResult struct {
	Out    string
	ErrOut string
	Ctx    *console.Context
}

// runAction feeds input lines to one action running behind the usual middleware chain.
func runAction(t *testing.T, db *gorm.DB, input string, action console.HandlerFunc) actionResult {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	c := console.NewContext(console.NewCollector(strings.NewReader(input), out), out, errOut)
	c.Path = t.Name()
	c.Run(
		middleware.Database(db),
		middleware.ActionID(),
		middleware.ActivityLogger(util.NewActivityLogger(db)),
		middleware.Recovery(),
		action,
	)
	return actionResult{Out: out.String(), ErrOut: errOut.String(), Ctx: c}
}

// lines joins scripted answers, one per prompt.
func lines(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func seedPatient(t *testing.T, db *gorm.DB, name string) model.Patient {
	t.Helper()
	p := model.Patient{FullName: name, Age: 30, Weight: 60, Address: "1 TEST ST", Contact: "9876543210", Gender: model.GenderFemale}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedDoctor(t *testing.T, db *gorm.DB, name string) model.Doctor {
	t.Helper()
	d := model.Doctor{FullName: name, Specialization: "CARDIOLOGY", Contact: "9123456780"}
	require.NoError(t, db.Create(&d).Error)
	return d
}
