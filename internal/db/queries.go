package db

import (
	"context"
	"fmt"
)

// SaveChatLog records one chat exchange.
func (db *DB) SaveChatLog(ctx context.Context, message, answer, category string, confidence float64) (*ChatLog, error) {
	query := `
		INSERT INTO chat_logs (message, answer, category, confidence)
		VALUES ($1, $2, $3, $4)
		RETURNING id, message, answer, category, confidence, created_at
	`

	entry := &ChatLog{}
	err := db.QueryRowContext(ctx, query, message, answer, category, confidence).Scan(
		&entry.ID, &entry.Message, &entry.Answer, &entry.Category,
		&entry.Confidence, &entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save chat log: %w", err)
	}
	return entry, nil
}

// RecentChatLogs returns the latest chat exchanges, newest first.
func (db *DB) RecentChatLogs(ctx context.Context, limit int) ([]ChatLog, error) {
	query := `
		SELECT id, message, answer, category, confidence, created_at
		FROM chat_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat logs: %w", err)
	}
	defer rows.Close()

	var logs []ChatLog
	for rows.Next() {
		var entry ChatLog
		if err := rows.Scan(&entry.ID, &entry.Message, &entry.Answer,
			&entry.Category, &entry.Confidence, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat log: %w", err)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// CountChatLogs returns the total number of recorded exchanges.
func (db *DB) CountChatLogs(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_logs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count chat logs: %w", err)
	}
	return count, nil
}
