package db

import (
	"context"
	"database/sql"

	"webhookd/internal/repository"
)

type Database interface {
	DB() *sql.DB

	MessagesRepo() repository.MessagesProvider

	Close() error
}

func connectToDB(ctx context.Context, driverName, dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}
