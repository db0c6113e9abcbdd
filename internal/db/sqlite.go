package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"webhookd/internal/repository"
	repo "webhookd/internal/repository/sqlite"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db       *sql.DB
	messages repository.MessagesProvider
}

func NewSQLite(dataSourceName string) (*SQLite, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := connectToDB(ctx, "sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db, "sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &SQLite{
		db:       db,
		messages: repo.NewMessagesRepo(db),
	}, nil
}

func (s *SQLite) DB() *sql.DB {
	return s.db
}

func (s *SQLite) MessagesRepo() repository.MessagesProvider {
	return s.messages
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
