package store

import (
	"context"
	"fmt"
	"time"
)

// CallRecord is one row of the calls table, the durable record of a finished
// call.
type CallRecord struct {
	ID        string
	CallerID  string
	StartedAt time.Time
	EndedAt   time.Time
	ModelKey  string
	CostUSD   float64
}

// RecordCall implements orchestrator.CallRecorder: it inserts the finished
// call's summary row, overwriting any partial row for the same ID.
func (db *DB) RecordCall(ctx context.Context, id, caller string, startedAt, endedAt time.Time, modelKey string, costUSD float64) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO calls (id, caller_id, started_at, ended_at, model_key, cost_usd)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, caller, startedAt.UTC(), endedAt.UTC(), modelKey, costUSD)
	if err != nil {
		return fmt.Errorf("store: record call: %w", err)
	}
	return nil
}

// ListCalls returns the most recent call records, newest first, for the
// dashboard's call history view.
func (db *DB) ListCalls(ctx context.Context, limit int) ([]CallRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.QueryContext(ctx,
		"SELECT id, caller_id, started_at, ended_at, model_key, cost_usd FROM calls ORDER BY started_at DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("store: list calls: %w", err)
	}
	defer rows.Close()
	var out []CallRecord
	for rows.Next() {
		var r CallRecord
		var modelKey *string
		if err := rows.Scan(&r.ID, &r.CallerID, &r.StartedAt, &r.EndedAt, &modelKey, &r.CostUSD); err != nil {
			return nil, fmt.Errorf("store: scan call record: %w", err)
		}
		if modelKey != nil {
			r.ModelKey = *modelKey
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// TotalCostUSD implements metrics.CostProvider: cumulative cost across every
// recorded call.
func (db *DB) TotalCostUSD() float64 {
	var total float64
	if err := db.QueryRow("SELECT COALESCE(SUM(cost_usd), 0) FROM calls").Scan(&total); err != nil {
		return 0
	}
	return total
}
