package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// DSN assembles the MySQL connection string for the configured database.
func (e Env) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser, e.DBPassword, e.DBHost, e.DBName)
}

// MigrateURL is the DSN shape golang-migrate's mysql driver expects.
func (e Env) MigrateURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s)/%s?multiStatements=true",
		e.DBUser, e.DBPassword, e.DBHost, e.DBName)
}

// ConnectDB opens the shared connection pool and verifies it with a ping.
// The handle is constructed once at process start and passed down
// explicitly; callers own Close.
func ConnectDB(env Env) (*sql.DB, error) {
	db, err := sql.Open("mysql", env.DSN())
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping base de datos: %w", err)
	}

	return db, nil
}
