package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Variant names one of the console programs sharing this module.
type Variant string

const (
	VariantClinic Variant = "clinic"
	VariantRental Variant = "rental"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config holds the application's configuration values.
type Config struct {
	AppName               string `json:"appname"`
	AppEnv                string `json:"appenv"`
	DBDriver              string `json:"dbdriver"`
	DBPath                string `json:"dbpath"`
	DBHost                string `json:"dbhost"`
	DBPort                uint16 `json:"dbport"`
	DBName                string `json:"dbname"`
	DBUSER                string `json:"dbuser"`
	DBPass                string `json:"dbpass"`
	LogLevel              string `json:"loglevel"`
	LogFile               string `json:"logfile"`
	MaxAppointmentsPerDay int    `json:"max_appointments_per_day"`
	PreventDoubleBooking  bool   `json:"prevent_double_booking"`
}

var config *Config
var once sync.Once

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("APPENV", "production")
	v.SetDefault("DBDRIVER", DriverSQLite)
	v.SetDefault("DBHOST", "localhost")
	v.SetDefault("LOGLEVEL", "info")
	v.SetDefault("MAX_APPOINTMENTS_PER_DAY", 0)
	v.SetDefault("PREVENT_DOUBLE_BOOKING", false)
	v.AutomaticEnv()
	return v
}

// LoadConfig loads the environment variables from an optional .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// A console program is usually started without a .env next to it.
		_ = godotenv.Load()

		v := newViper()
		config = &Config{
			AppName:               v.GetString("APPNAME"),
			AppEnv:                v.GetString("APPENV"),
			DBDriver:              strings.ToLower(v.GetString("DBDRIVER")),
			DBPath:                v.GetString("DBPATH"),
			DBHost:                v.GetString("DBHOST"),
			DBPort:                uint16(v.GetUint("DBPORT")),
			DBName:                v.GetString("DBNAME"),
			DBUSER:                v.GetString("DBUSER"),
			DBPass:                v.GetString("DBPASS"),
			LogLevel:              v.GetString("LOGLEVEL"),
			LogFile:               v.GetString("LOGFILE"),
			MaxAppointmentsPerDay: v.GetInt("MAX_APPOINTMENTS_PER_DAY"),
			PreventDoubleBooking:  v.GetBool("PREVENT_DOUBLE_BOOKING"),
		}
	})
	return config
}

// ResetConfigForTest drops the singleton so the next LoadConfig reads the environment again.
// This function is only meant for tests.
func ResetConfigForTest() {
	config = nil
	once = sync.Once{}
}

// DefaultDBPath returns the sqlite file used by a variant when DBPATH is not set.
func DefaultDBPath(variant Variant) string {
	if variant == VariantRental {
		return "rental_management.db"
	}
	return "clinic.db"
}

// DefaultLogFile returns the log file used by a variant when LOGFILE is not set.
func DefaultLogFile(variant Variant) string {
	if variant == VariantRental {
		return "rental.log"
	}
	return "clinic.log"
}

// DefaultAppName returns the banner shown on the root menu of a variant when APPNAME is not set.
func DefaultAppName(variant Variant) string {
	if variant == VariantRental {
		return "SIMPLE RENTAL MANAGEMENT SYSTEM"
	}
	return "CLINIC APPOINTMENT MANAGEMENT SYSTEM"
}

// ApplyVariantDefaults fills the per-variant defaults the environment left empty.
func (c *Config) ApplyVariantDefaults(variant Variant) {
	if c.AppName == "" {
		c.AppName = DefaultAppName(variant)
	}
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath(variant)
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile(variant)
	}
	if c.DBName == "" {
		c.DBName = strings.TrimSuffix(DefaultDBPath(variant), ".db")
	}
}

func sqliteDSN(cfg *Config) string {
	if cfg.AppEnv == "test" {
		// Uniquified shared-cache memory database so parallel packages do not see each other's rows.
		return fmt.Sprintf("file:clinicdesk_%d?mode=memory&cache=shared&_foreign_keys=1", time.Now().UnixNano())
	}
	return fmt.Sprintf("file:%s?_foreign_keys=1", cfg.DBPath)
}

// dbPort returns DBPORT, or the default port of the server driver when it is unset.
func dbPort(cfg *Config) uint16 {
	if cfg.DBPort != 0 {
		return cfg.DBPort
	}
	switch cfg.DBDriver {
	case DriverMySQL:
		return 3306
	case DriverPostgres:
		return 5432
	}
	return 0
}

func mysqlDSN(cfg *Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUSER, cfg.DBPass, cfg.DBHost, dbPort(cfg), cfg.DBName)
}

func postgresDSN(cfg *Config) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", cfg.DBHost, dbPort(cfg), cfg.DBUSER, cfg.DBPass, cfg.DBName)
}

func dialector(cfg *Config) (gorm.Dialector, error) {
	if cfg.AppEnv == "test" {
		return sqlite.Open(sqliteDSN(cfg)), nil
	}

	switch cfg.DBDriver {
	case "", DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg)), nil
	case DriverMySQL:
		return mysql.Open(mysqlDSN(cfg)), nil
	case DriverPostgres:
		return postgres.Open(postgresDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported DBDRIVER %q", cfg.DBDriver)
	}
}

// ConnectDatabase opens the store described by cfg. The sqlite store is a single
// long-lived connection with foreign keys enforced.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if db.Dialector.Name() == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	return db, nil
}

// Close releases the store handle opened by ConnectDatabase.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
