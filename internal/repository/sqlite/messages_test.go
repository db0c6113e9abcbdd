package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"webhookd/internal/db"
	"webhookd/internal/model"
)

func newTestDB(t *testing.T) db.Database {
	t.Helper()
	database, err := db.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestEnqueueAndListPending(t *testing.T) {
	database := newTestDB(t)
	repo := database.MessagesRepo()
	ctx := context.Background()

	id, err := repo.Enqueue(ctx, model.Message{
		Platform:   model.PlatformTelegram,
		Body:       "hello",
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if id == 0 {
		t.Fatal("Enqueue returned zero id")
	}

	pending, err := repo.ListPending(ctx, 10)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}
	if pending[0].Id != id || pending[0].Body != "hello" {
		t.Errorf("unexpected pending message: %+v", pending[0])
	}
}

func TestListPendingLimit(t *testing.T) {
	database := newTestDB(t)
	repo := database.MessagesRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := repo.Enqueue(ctx, model.Message{
			Platform:   model.PlatformTelegram,
			Body:       "msg",
			EnqueuedAt: time.Now().UTC(),
		}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	pending, err := repo.ListPending(ctx, 3)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 3 {
		t.Errorf("pending = %d, want 3", len(pending))
	}
}

func TestMarkSentMovesMessage(t *testing.T) {
	database := newTestDB(t)
	repo := database.MessagesRepo()
	ctx := context.Background()

	id, err := repo.Enqueue(ctx, model.Message{
		Platform:   model.PlatformDiscord,
		Body:       "bye",
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	if err := repo.MarkSent(ctx, id); err != nil {
		t.Fatalf("MarkSent: %v", err)
	}

	if _, err := repo.GetPending(ctx, id); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetPending after MarkSent: err = %v, want sql.ErrNoRows", err)
	}

	var count int
	row := database.DB().QueryRow("SELECT COUNT(*) FROM sent WHERE id = ?", id)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("count sent: %v", err)
	}
	if count != 1 {
		t.Errorf("sent rows = %d, want 1", count)
	}
}

func TestIncrementAttempts(t *testing.T) {
	database := newTestDB(t)
	repo := database.MessagesRepo()
	ctx := context.Background()

	id, err := repo.Enqueue(ctx, model.Message{
		Platform:   model.PlatformTelegram,
		Body:       "retry me",
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	if err := repo.IncrementAttempts(ctx, id); err != nil {
		t.Fatalf("IncrementAttempts: %v", err)
	}

	message, err := repo.GetPending(ctx, id)
	if err != nil {
		t.Fatalf("GetPending: %v", err)
	}
	if message.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", message.Attempts)
	}
}

func TestDelete(t *testing.T) {
	database := newTestDB(t)
	repo := database.MessagesRepo()
	ctx := context.Background()

	id, err := repo.Enqueue(ctx, model.Message{
		Platform:   model.PlatformTelegram,
		Body:       "drop me",
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetPending(ctx, id); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetPending after Delete: err = %v, want sql.ErrNoRows", err)
	}

	var count int
	row := database.DB().QueryRow("SELECT COUNT(*) FROM sent")
	if err := row.Scan(&count); err != nil {
		t.Fatalf("count sent: %v", err)
	}
	if count != 0 {
		t.Errorf("deleted message must not be archived, sent rows = %d", count)
	}
}
