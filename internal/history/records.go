package history

import (
	"fmt"
	"time"
)

// CommandRecord is one line a user ran, with when it ran.
type CommandRecord struct {
	ID    int64
	Line  string
	RanAt time.Time
}

// BreakpointHitRecord is one on-stop sequence that landed on a non-internal
// breakpoint (internal/console.Context.SetOnStop), with the same identifying
// fields the stop header printed.
type BreakpointHitRecord struct {
	ID           int64
	BreakpointID int
	TargetID     int
	ThreadID     int
	Reason       string
	HitAt        time.Time
}

// RecordCommand appends line to the command history.
func (db *DB) RecordCommand(line string) error {
	_, err := db.conn.Exec(
		`INSERT INTO command_history (line, ran_at) VALUES (?, ?)`,
		line, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("recording command history: %w", err)
	}
	return nil
}

// RecentCommands returns up to limit of the most recently run commands,
// newest first.
func (db *DB) RecentCommands(limit int) ([]CommandRecord, error) {
	rows, err := db.conn.Query(
		`SELECT id, line, ran_at FROM command_history ORDER BY ran_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying command history: %w", err)
	}
	defer rows.Close()

	var out []CommandRecord
	for rows.Next() {
		var r CommandRecord
		var ranAt int64
		if err := rows.Scan(&r.ID, &r.Line, &ranAt); err != nil {
			return nil, fmt.Errorf("scanning command history row: %w", err)
		}
		r.RanAt = time.Unix(ranAt, 0)
		out = append(out, r)
	}
	return out, rows.Err()
}

// RecordBreakpointHit appends one breakpoint-hit observation, matching the
// fields internal/console's stop header carries (spec §4.8 point 2).
func (db *DB) RecordBreakpointHit(breakpointID, targetID, threadID int, reason string) error {
	_, err := db.conn.Exec(
		`INSERT INTO breakpoint_hits (breakpoint_id, target_id, thread_id, reason, hit_at) VALUES (?, ?, ?, ?, ?)`,
		breakpointID, targetID, threadID, reason, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("recording breakpoint hit: %w", err)
	}
	return nil
}

// RecentBreakpointHits returns up to limit of the most recent hits recorded
// against breakpointID, newest first. breakpointID == 0 returns hits across
// every breakpoint.
func (db *DB) RecentBreakpointHits(breakpointID int, limit int) ([]BreakpointHitRecord, error) {
	query := `SELECT id, breakpoint_id, target_id, thread_id, reason, hit_at FROM breakpoint_hits`
	args := []any{}
	if breakpointID != 0 {
		query += ` WHERE breakpoint_id = ?`
		args = append(args, breakpointID)
	}
	query += ` ORDER BY hit_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying breakpoint hits: %w", err)
	}
	defer rows.Close()

	var out []BreakpointHitRecord
	for rows.Next() {
		var r BreakpointHitRecord
		var hitAt int64
		if err := rows.Scan(&r.ID, &r.BreakpointID, &r.TargetID, &r.ThreadID, &r.Reason, &hitAt); err != nil {
			return nil, fmt.Errorf("scanning breakpoint hit row: %w", err)
		}
		r.HitAt = time.Unix(hitAt, 0)
		out = append(out, r)
	}
	return out, rows.Err()
}
