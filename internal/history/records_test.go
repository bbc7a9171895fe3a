package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndRecentCommands(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.RecordCommand("process 1"))
	require.NoError(t, db.RecordCommand("break demo.c:20"))

	recent, err := db.RecentCommands(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "break demo.c:20", recent[0].Line)
	require.Equal(t, "process 1", recent[1].Line)
}

func TestRecentCommandsRespectsLimit(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.RecordCommand("a"))
	require.NoError(t, db.RecordCommand("b"))
	require.NoError(t, db.RecordCommand("c"))

	recent, err := db.RecentCommands(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
}

func TestRecordAndRecentBreakpointHits(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.RecordBreakpointHit(3, 1, 2, "breakpoint 3"))
	require.NoError(t, db.RecordBreakpointHit(4, 1, 2, "breakpoint 4"))

	all, err := db.RecentBreakpointHits(0, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := db.RecentBreakpointHits(3, 10)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, 3, filtered[0].BreakpointID)
}
