package db

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return &DB{mockDB}, mock
}

func TestSaveChatLog(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "message", "answer", "category", "confidence", "created_at"}).
		AddRow("abc-123", "hello", "Hi there!", "greeting", 1.0, now)

	mock.ExpectQuery("INSERT INTO chat_logs").
		WithArgs("hello", "Hi there!", "greeting", 1.0).
		WillReturnRows(rows)

	entry, err := db.SaveChatLog(context.Background(), "hello", "Hi there!", "greeting", 1.0)
	if err != nil {
		t.Fatalf("SaveChatLog() error = %v", err)
	}
	if entry.ID != "abc-123" || entry.Category != "greeting" {
		t.Errorf("SaveChatLog() = %+v, want the inserted row", entry)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecentChatLogs(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "message", "answer", "category", "confidence", "created_at"}).
		AddRow("id-2", "second", "answer 2", "general", 0.4, now).
		AddRow("id-1", "first", "answer 1", "nutrition", 0.9, now.Add(-time.Minute))

	mock.ExpectQuery("SELECT id, message, answer, category, confidence, created_at").
		WithArgs(50).
		WillReturnRows(rows)

	logs, err := db.RecentChatLogs(context.Background(), 50)
	if err != nil {
		t.Fatalf("RecentChatLogs() error = %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("RecentChatLogs() returned %d rows, want 2", len(logs))
	}
	if logs[0].ID != "id-2" || logs[1].ID != "id-1" {
		t.Errorf("RecentChatLogs() order = %s, %s, want newest first", logs[0].ID, logs[1].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCountChatLogs(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := db.CountChatLogs(context.Background())
	if err != nil {
		t.Fatalf("CountChatLogs() error = %v", err)
	}
	if count != 42 {
		t.Errorf("CountChatLogs() = %d, want 42", count)
	}
}

func TestEnsureSchema(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS chat_logs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := db.EnsureSchema(context.Background()); err != nil {
		t.Errorf("EnsureSchema() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
