package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type ConnectParams struct {
	Driver     string // postgres | sqlite
	Host       string
	Port       string
	Name       string
	User       string
	Password   string
	SqlitePath string
	DebugMode  bool
	Migrate    bool
}

func Connect(params ConnectParams) (err error) {
	if DB != nil {
		return nil
	}
	db, err := Open(params.Driver, dsn(params), params.DebugMode)
	if err != nil {
		return err
	}
	DB = db
	if params.Migrate {
		if err = AutoMigrateDB(DB); err != nil {
			return err
		}
	}
	log.WithField("driver", params.Driver).Info("database connected")
	return nil
}

// Open returns a gorm connection logging through logrus.
func Open(driver, dsn string, debugMode bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   gorm_logrus.New(),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "database connection failed")
	}
	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		db = db.Debug()
	}
	if driver == "sqlite" {
		// sqlite allows a single writer
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func dsn(params ConnectParams) string {
	if params.Driver == "sqlite" {
		return params.SqlitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
		params.Host, params.Port, params.User, params.Name, params.Password)
}
