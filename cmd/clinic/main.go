package main

import (
	"fmt"
	"os"

	"github.com/ariebrainware/clinic-desk/config"
	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/endpoint"
	"github.com/ariebrainware/clinic-desk/middleware"
	"github.com/ariebrainware/clinic-desk/model"
	"github.com/ariebrainware/clinic-desk/util"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()
	cfg.ApplyVariantDefaults(config.VariantClinic)

	logFile, err := util.ConfigureLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Error opening log file: %v", err)
	}
	defer logFile.Close()
	logger := util.Logger()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open database %s: %v\n", cfg.DBPath, err)
		logger.Fatalf("Error connecting to database: %v", err)
	}
	if err := model.Migrate(db, model.ClinicModels()...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Fatalf("Error creating tables: %v", err)
	}

	activity := util.NewActivityLogger(db)
	logger.WithField("session_id", activity.SessionID()).Info("clinic session started")

	nav := console.NewNavigator(os.Stdin, os.Stdout, os.Stderr)
	nav.Use(
		middleware.Database(db),
		middleware.ActionID(),
		middleware.ActivityLogger(activity),
		middleware.Recovery(),
	)
	rules := endpoint.BookingRules{
		MaxPerDay:            cfg.MaxAppointmentsPerDay,
		PreventDoubleBooking: cfg.PreventDoubleBooking,
	}
	if err := nav.Run(endpoint.ClinicMenu(cfg.AppName, rules)); err != nil {
		logger.WithError(err).Error("console session failed")
	}

	if err := config.Close(db); err != nil {
		logger.WithError(err).Warn("failed to close database")
	}
	logger.WithField("session_id", activity.SessionID()).Info("clinic session ended")
}
