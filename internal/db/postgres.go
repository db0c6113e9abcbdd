package db

import (
	"context"
	"database/sql"
	"time"

	"webhookd/internal/repository"
	repo "webhookd/internal/repository/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Postgres struct {
	db       *sql.DB
	messages repository.MessagesProvider
}

func NewPostgres(url string) (*Postgres, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := connectToDB(ctx, "pgx", url)
	if err != nil {
		return nil, err
	}

	if err := migrate(db, "postgres"); err != nil {
		return nil, err
	}

	return &Postgres{
		db:       db,
		messages: repo.NewMessagesRepo(db),
	}, nil
}

func (p *Postgres) DB() *sql.DB {
	return p.db
}

func (p *Postgres) MessagesRepo() repository.MessagesProvider {
	return p.messages
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
