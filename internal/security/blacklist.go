// Package security implements the access-control layer wrapped around every
// call: the blacklist/whitelist store, the trunk IP firewall, and the
// per-call inactivity timer. The blacklist semantics are grounded exactly in
// original_source/voiceagent-platform/core/app/blacklist/store.py (the
// authoritative reference for method names, the 3-in-12h auto-blacklist
// threshold, and the exact German reason string); the storage mechanics
// reuse internal/store's *sql.DB.
package security

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Defaults for MaxFailedAttempts/FailedWindow, used when NewBlacklistStore's
// caller leaves them unset.
const (
	defaultMaxFailedAttempts = 3
	defaultFailedWindow      = 12 * time.Hour
)

// BlacklistEntry is one row of the blacklist table.
type BlacklistEntry struct {
	CallerID  string
	Reason    string
	BlockedAt time.Time
}

// WhitelistEntry is one row of the whitelist table.
type WhitelistEntry struct {
	CallerID string
	Note     string
	AddedAt  time.Time
}

// BlacklistStore manages blocked and allow-listed caller numbers, and the
// auto-blacklist threshold counter. MaxFailedAttempts and FailedWindow are
// exported so callers (cmd/voicegatewayd) can override the §3 defaults from
// config; CheckAndAutoBlacklist reads them directly, not package constants.
type BlacklistStore struct {
	db     *sql.DB
	logger *slog.Logger

	MaxFailedAttempts int
	FailedWindow      time.Duration
}

// NewBlacklistStore constructs a store bound to db, with MaxFailedAttempts
// and FailedWindow set to the §3 defaults (3 attempts / 12h); callers may
// overwrite either field afterward.
func NewBlacklistStore(db *sql.DB, logger *slog.Logger) *BlacklistStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlacklistStore{
		db:                db,
		logger:            logger,
		MaxFailedAttempts: defaultMaxFailedAttempts,
		FailedWindow:      defaultFailedWindow,
	}
}

// IsBlacklisted reports whether callerID is currently blocked.
func (s *BlacklistStore) IsBlacklisted(ctx context.Context, callerID string) (bool, error) {
	var discard string
	err := s.db.QueryRowContext(ctx, "SELECT caller_id FROM blacklist WHERE caller_id = ?", callerID).Scan(&discard)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("security: is_blacklisted: %w", err)
	}
	return true, nil
}

// Add blocks callerID, overwriting any existing entry (INSERT OR REPLACE,
// matching the source).
func (s *BlacklistStore) Add(ctx context.Context, callerID, reason string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO blacklist (caller_id, reason, blocked_at) VALUES (?, ?, ?)",
		callerID, reason, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("security: blacklist add: %w", err)
	}
	s.logger.Warn("security: number blacklisted", "caller", callerID, "reason", reason)
	return nil
}

// Remove unblocks callerID and purges its failed-attempt history, so a fresh
// 3 failures are required before auto-blacklisting fires again. Returns
// false if callerID was not on the blacklist.
func (s *BlacklistStore) Remove(ctx context.Context, callerID string) (bool, error) {
	blacklisted, err := s.IsBlacklisted(ctx, callerID)
	if err != nil {
		return false, err
	}
	if !blacklisted {
		return false, nil
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM blacklist WHERE caller_id = ?", callerID); err != nil {
		return false, fmt.Errorf("security: blacklist remove: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM failed_unlock_calls WHERE caller_id = ?", callerID); err != nil {
		return false, fmt.Errorf("security: purge failed calls: %w", err)
	}
	s.logger.Info("security: number unblocked, failed-call history purged", "caller", callerID)
	return true, nil
}

// All returns every blacklist entry, most recently blocked first.
func (s *BlacklistStore) All(ctx context.Context) ([]BlacklistEntry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT caller_id, reason, blocked_at FROM blacklist ORDER BY blocked_at DESC")
	if err != nil {
		return nil, fmt.Errorf("security: blacklist all: %w", err)
	}
	defer rows.Close()
	var out []BlacklistEntry
	for rows.Next() {
		var e BlacklistEntry
		if err := rows.Scan(&e.CallerID, &e.Reason, &e.BlockedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RecordFailedCall logs one failed unlock attempt for callerID.
func (s *BlacklistStore) RecordFailedCall(ctx context.Context, callerID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO failed_unlock_calls (caller_id, failed_at) VALUES (?, ?)",
		callerID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("security: record failed call: %w", err)
	}
	s.logger.Info("security: failed unlock recorded", "caller", callerID)
	return nil
}

// CheckAndAutoBlacklist blocks callerID if it has accrued MaxFailedAttempts
// or more failed unlock attempts within FailedWindow, and reports whether
// it just got blocked. A caller already blacklisted is left untouched and
// returns false (idempotent, matches the source).
func (s *BlacklistStore) CheckAndAutoBlacklist(ctx context.Context, callerID string) (bool, error) {
	already, err := s.IsBlacklisted(ctx, callerID)
	if err != nil {
		return false, err
	}
	if already {
		return false, nil
	}

	maxFailedCalls := s.MaxFailedAttempts
	if maxFailedCalls <= 0 {
		maxFailedCalls = defaultMaxFailedAttempts
	}
	failedCallsWindow := s.FailedWindow
	if failedCallsWindow <= 0 {
		failedCallsWindow = defaultFailedWindow
	}

	cutoff := time.Now().UTC().Add(-failedCallsWindow)
	var count int
	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM failed_unlock_calls WHERE caller_id = ? AND failed_at > ?",
		callerID, cutoff).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("security: count failed calls: %w", err)
	}
	if count < maxFailedCalls {
		return false, nil
	}

	reason := fmt.Sprintf("Auto-Blacklist: %d fehlgeschlagene Anrufe in %dh", count, int(failedCallsWindow.Hours()))
	if err := s.Add(ctx, callerID, reason); err != nil {
		return false, err
	}
	return true, nil
}

// IsWhitelisted reports whether callerID bypasses the security gate.
func (s *BlacklistStore) IsWhitelisted(ctx context.Context, callerID string) (bool, error) {
	var discard string
	err := s.db.QueryRowContext(ctx, "SELECT caller_id FROM whitelist WHERE caller_id = ?", callerID).Scan(&discard)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("security: is_whitelisted: %w", err)
	}
	return true, nil
}

// AddToWhitelist allow-lists callerID, overwriting any existing entry.
func (s *BlacklistStore) AddToWhitelist(ctx context.Context, callerID, note string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO whitelist (caller_id, note, added_at) VALUES (?, ?, ?)",
		callerID, note, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("security: whitelist add: %w", err)
	}
	s.logger.Info("security: number whitelisted", "caller", callerID)
	return nil
}

// RemoveFromWhitelist drops callerID from the whitelist. Returns false if it
// was not present.
func (s *BlacklistStore) RemoveFromWhitelist(ctx context.Context, callerID string) (bool, error) {
	whitelisted, err := s.IsWhitelisted(ctx, callerID)
	if err != nil {
		return false, err
	}
	if !whitelisted {
		return false, nil
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM whitelist WHERE caller_id = ?", callerID); err != nil {
		return false, fmt.Errorf("security: whitelist remove: %w", err)
	}
	s.logger.Info("security: number removed from whitelist", "caller", callerID)
	return true, nil
}

// BlacklistSize implements metrics.BlacklistProvider.
func (s *BlacklistStore) BlacklistSize(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM blacklist").Scan(&n); err != nil {
		return 0, fmt.Errorf("security: blacklist size: %w", err)
	}
	return n, nil
}

// WhitelistSize implements metrics.BlacklistProvider.
func (s *BlacklistStore) WhitelistSize(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM whitelist").Scan(&n); err != nil {
		return 0, fmt.Errorf("security: whitelist size: %w", err)
	}
	return n, nil
}

// AllWhitelist returns every whitelist entry, most recently added first.
func (s *BlacklistStore) AllWhitelist(ctx context.Context) ([]WhitelistEntry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT caller_id, note, added_at FROM whitelist ORDER BY added_at DESC")
	if err != nil {
		return nil, fmt.Errorf("security: whitelist all: %w", err)
	}
	defer rows.Close()
	var out []WhitelistEntry
	for rows.Next() {
		var e WhitelistEntry
		if err := rows.Scan(&e.CallerID, &e.Note, &e.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
