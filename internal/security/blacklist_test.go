package security

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikolashermanns-netizen/voiceagent-platform/internal/store"
)

func newTestStore(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBlacklistAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	bl := NewBlacklistStore(newTestStore(t).DB, nil)

	require.NoError(t, bl.Add(ctx, "+4915155512345", "manual test block"))
	require.NoError(t, bl.Add(ctx, "+4915155512345", "manual test block again"))

	all, err := bl.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "adding the same caller twice must yield one row")

	blacklisted, err := bl.IsBlacklisted(ctx, "+4915155512345")
	require.NoError(t, err)
	require.True(t, blacklisted)
}

func TestBlacklistRemovePurgesFailedAttempts(t *testing.T) {
	ctx := context.Background()
	bl := NewBlacklistStore(newTestStore(t).DB, nil)
	caller := "+4915155512345"

	require.NoError(t, bl.RecordFailedCall(ctx, caller))
	require.NoError(t, bl.RecordFailedCall(ctx, caller))
	require.NoError(t, bl.Add(ctx, caller, "manual"))

	removed, err := bl.Remove(ctx, caller)
	require.NoError(t, err)
	require.True(t, removed)

	blacklisted, err := bl.IsBlacklisted(ctx, caller)
	require.NoError(t, err)
	require.False(t, blacklisted)

	// Purged failed-attempt history means a fresh 3 failures are required
	// before auto-blacklist fires again.
	blocked, err := bl.CheckAndAutoBlacklist(ctx, caller)
	require.NoError(t, err)
	require.False(t, blocked)
}

func TestCheckAndAutoBlacklistThreshold(t *testing.T) {
	ctx := context.Background()
	bl := NewBlacklistStore(newTestStore(t).DB, nil)
	caller := "+4915155512345"

	for i := 0; i < 2; i++ {
		require.NoError(t, bl.RecordFailedCall(ctx, caller))
		blocked, err := bl.CheckAndAutoBlacklist(ctx, caller)
		require.NoError(t, err)
		require.False(t, blocked, "fewer than 3 failed calls must not trigger auto-blacklist")
	}

	require.NoError(t, bl.RecordFailedCall(ctx, caller))
	blocked, err := bl.CheckAndAutoBlacklist(ctx, caller)
	require.NoError(t, err)
	require.True(t, blocked, "3rd failed call within the window must auto-blacklist")

	blacklisted, err := bl.IsBlacklisted(ctx, caller)
	require.NoError(t, err)
	require.True(t, blacklisted)

	all, err := bl.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Contains(t, all[0].Reason, "Auto-Blacklist:")
}

func TestCheckAndAutoBlacklistAlreadyBlacklistedIsNoop(t *testing.T) {
	ctx := context.Background()
	bl := NewBlacklistStore(newTestStore(t).DB, nil)
	caller := "+4915155512345"

	require.NoError(t, bl.Add(ctx, caller, "manual"))
	for i := 0; i < 3; i++ {
		require.NoError(t, bl.RecordFailedCall(ctx, caller))
	}
	blocked, err := bl.CheckAndAutoBlacklist(ctx, caller)
	require.NoError(t, err)
	require.False(t, blocked, "already-blacklisted callers report false, not a fresh block")
}

func TestWhitelistRoundTrip(t *testing.T) {
	ctx := context.Background()
	bl := NewBlacklistStore(newTestStore(t).DB, nil)
	caller := "+4915155599999"

	whitelisted, err := bl.IsWhitelisted(ctx, caller)
	require.NoError(t, err)
	require.False(t, whitelisted)

	require.NoError(t, bl.AddToWhitelist(ctx, caller, "trusted partner"))
	whitelisted, err = bl.IsWhitelisted(ctx, caller)
	require.NoError(t, err)
	require.True(t, whitelisted)

	removed, err := bl.RemoveFromWhitelist(ctx, caller)
	require.NoError(t, err)
	require.True(t, removed)

	whitelisted, err = bl.IsWhitelisted(ctx, caller)
	require.NoError(t, err)
	require.False(t, whitelisted)
}

func TestBlacklistWinsOverWhitelist(t *testing.T) {
	// §8: "Whitelisted caller never observes the security gate even if
	// blacklist contains the same caller -- blacklist still wins." This
	// store only reports membership; the precedence itself is enforced by
	// the gateway handler checking IsBlacklisted before IsWhitelisted, but
	// both flags being simultaneously true for one caller must be possible
	// to represent.
	ctx := context.Background()
	bl := NewBlacklistStore(newTestStore(t).DB, nil)
	caller := "+4915155512345"

	require.NoError(t, bl.Add(ctx, caller, "bad actor"))
	require.NoError(t, bl.AddToWhitelist(ctx, caller, "stale whitelist entry"))

	blacklisted, err := bl.IsBlacklisted(ctx, caller)
	require.NoError(t, err)
	require.True(t, blacklisted)

	whitelisted, err := bl.IsWhitelisted(ctx, caller)
	require.NoError(t, err)
	require.True(t, whitelisted)
}
