package mysql

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

//go:embed sessions.sql
var sessionsTable string

// LoadDB opens the session database and makes sure its table exists.
func LoadDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to DB: %w", err)
	}
	if err := Exec(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create tables: %w", err)
	}
	return db, nil
}

func Exec(db *sql.DB) error {
	if _, err := db.Exec(sessionsTable); err != nil {
		return fmt.Errorf("failed to execute sessions.sql: %w", err)
	}
	return nil
}
