package repository

import (
	"context"
	"fmt"
	"time"
)

// GameResult is one finished game.
type GameResult struct {
	GameID        string
	WinnerID      string
	WinnerName    string
	CompletedSets int
	Turns         int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// ResultRepository records finished games.
type ResultRepository struct {
	db *DB
}

// NewResultRepository creates a result repository.
func NewResultRepository(db *DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// EnsureSchema creates the results table if it does not exist.
func (r *ResultRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS game_results (
			id             BIGSERIAL PRIMARY KEY,
			game_id        TEXT NOT NULL,
			winner_id      TEXT NOT NULL,
			winner_name    TEXT NOT NULL,
			completed_sets INT NOT NULL,
			turns          INT NOT NULL,
			started_at     TIMESTAMPTZ NOT NULL,
			finished_at    TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create game_results table: %w", err)
	}
	return nil
}

// RecordResult inserts one finished game.
func (r *ResultRepository) RecordResult(ctx context.Context, result GameResult) error {
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO game_results (game_id, winner_id, winner_name, completed_sets, turns, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		result.GameID,
		result.WinnerID,
		result.WinnerName,
		result.CompletedSets,
		result.Turns,
		result.StartedAt,
		result.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record game result: %w", err)
	}
	return nil
}

// RecentResults returns the most recently finished games, newest first.
func (r *ResultRepository) RecentResults(ctx context.Context, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.pool.Query(ctx, `
		SELECT game_id, winner_id, winner_name, completed_sets, turns, started_at, finished_at
		FROM game_results
		ORDER BY finished_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	results := make([]GameResult, 0, limit)
	for rows.Next() {
		var res GameResult
		if err := rows.Scan(
			&res.GameID,
			&res.WinnerID,
			&res.WinnerName,
			&res.CompletedSets,
			&res.Turns,
			&res.StartedAt,
			&res.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
