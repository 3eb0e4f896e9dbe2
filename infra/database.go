package infra

import (
	"errors"
	"time"

	"github.com/arsbank/backoffice/infra/repository"
	"github.com/arsbank/backoffice/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the Postgres connection, tunes the pool, and migrates
// the schema. In development GORM logs every statement; elsewhere it is silent.
func NewDBConnection(cnf config.DB, appEnv string) (*gorm.DB, error) {
	databaseUrl := cnf.Url
	if databaseUrl == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	if err = connection.AutoMigrate(
		&repository.Client{},
		&repository.Company{},
		&repository.Employee{},
		&repository.Currency{},
		&repository.Account{},
		&repository.Card{},
		&repository.LoanRequest{},
	); err != nil {
		return nil, err
	}
	if err = repository.SeedCurrencies(connection); err != nil {
		return nil, err
	}

	return connection, nil
}
