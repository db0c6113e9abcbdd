package sqlite

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
	result, err := m.db.ExecContext(
		ctx,
		"INSERT INTO queue (platform, body, attempts, enqueued_at) VALUES (?, ?, ?, ?)",
		message.Platform, message.Body, message.Attempts, message.EnqueuedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (m *MessagesRepo) GetPending(ctx context.Context, id int64) (model.Message, error) {
	row := m.db.QueryRowContext(
		ctx,
		"SELECT id, platform, body, attempts, enqueued_at FROM queue WHERE id = ?",
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
		"SELECT id, platform, body, attempts, enqueued_at FROM queue ORDER BY id LIMIT ?",
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
		"UPDATE queue SET attempts = attempts + 1 WHERE id = ?",
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
		SELECT id, platform, body, attempts, enqueued_at, ?
		FROM queue WHERE id = ?`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM queue WHERE id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

func (m *MessagesRepo) Delete(ctx context.Context, id int64) error {
	_, err := m.db.ExecContext(ctx, "DELETE FROM queue WHERE id = ?", id)
	return err
}
