package databases

import (
	"database/sql"
	"time"

	// postgres driver
	_ "github.com/lib/pq"

	"github.com/casaverde/casa-verde-api/config"
)

// NewClient uses the values from the config and returns an open postgres handle
func NewClient(conf *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", conf.DatabaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}
