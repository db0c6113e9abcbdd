package postgres

import (
	"context"
	"database/sql"
	"time"

	"webhookd/internal/model"
)

type MessagesRepo struct {
	db *sql.DB
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{db}
}

func (m *MessagesRepo) Enqueue(ctx context.Context, message model.Message) (int64, error) {
	var id int64
	err := m.db.QueryRowContext(
		ctx,
		`INSERT INTO queue (platform, body, attempts, enqueued_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		message.Platform, message.Body, message.Attempts, message.EnqueuedAt,
	).Scan(&id)
	return id, err
}

func (m *MessagesRepo) GetPending(ctx context.Context, id int64) (model.Message, error) {
	row := m.db.QueryRowContext(
		ctx,
		"SELECT id, platform, body, attempts, enqueued_at FROM queue WHERE id = $1",
		id,
	)

	var message model.Message
	err := row.Scan(
		&message.Id, &message.Platform, &message.Body,
		&message.Attempts, &message.EnqueuedAt,
	)
	return message, err
}

func (m *MessagesRepo) ListPending(ctx context.Context, limit int) ([]model.Message, error) {
	rows, err := m.db.QueryContext(
		ctx,
		"SELECT id, platform, body, attempts, enqueued_at FROM queue ORDER BY id LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]model.Message, 0)
	for rows.Next() {
		var message model.Message
		err = rows.Scan(
			&message.Id, &message.Platform, &message.Body,
			&message.Attempts, &message.EnqueuedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (m *MessagesRepo) IncrementAttempts(ctx context.Context, id int64) error {
	_, err := m.db.ExecContext(
		ctx,
		"UPDATE queue SET attempts = attempts + 1 WHERE id = $1",
		id,
	)
	return err
}

func (m *MessagesRepo) MarkSent(ctx context.Context, id int64) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO sent (id, platform, body, attempts, enqueued_at, sent_at)
		SELECT id, platform, body, attempts, enqueued_at, $1
		FROM queue WHERE id = $2`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM queue WHERE id = $1", id); err != nil {
		return err
	}

	return tx.Commit()
}

func (m *MessagesRepo) Delete(ctx context.Context, id int64) error {
	_, err := m.db.ExecContext(ctx, "DELETE FROM queue WHERE id = $1", id)
	return err
}
