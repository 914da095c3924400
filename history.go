package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// historyFileName is the name of the history database in the data directory.
const historyFileName = "history.db"

// Operations recorded in the history.
const (
	OpRename = "rename"
	OpRevert = "revert"
)

// HistoryEvent is one completed rename or revert.
type HistoryEvent struct {
	ID    int64
	Batch uuid.UUID
	Op    string
	From  string
	To    string
	At    time.Time
}

// History is an append-only SQLite log of completed renames and reverts.
// It is informational: reverts are driven by the RevertStore alone.
type History struct {
	db *sql.DB
}

const historySchema = `
CREATE TABLE IF NOT EXISTS events (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	batch TEXT NOT NULL,
	op    TEXT NOT NULL,
	src   TEXT NOT NULL,
	dst   TEXT NOT NULL,
	at    TEXT NOT NULL
)`

// OpenHistory opens, creating if needed, the history database at path.
func OpenHistory(ctx context.Context, path string) (*History, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.WithMessage(err, "opening history database")
	}
	if _, err := db.ExecContext(ctx, historySchema); err != nil {
		_ = db.Close()
		return nil, errors.WithMessage(err, "creating history schema")
	}
	return &History{db: db}, nil
}

// Record appends an event. A nil History records nothing. Failures are
// logged and otherwise ignored.
func (h *History) Record(ctx context.Context, batch uuid.UUID, op, from, to string) {
	if h == nil {
		return
	}
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO events (batch, op, src, dst, at) VALUES (?, ?, ?, ?, ?)`,
		batch.String(), op, from, to, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		log.WithFields(log.Fields{"op": op, "from": from, "to": to, "err": err}).Warn("failed to record history")
	}
}

// Recent returns up to limit events, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]HistoryEvent, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, batch, op, src, dst, at FROM events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, errors.WithMessage(err, "querying history")
	}
	defer rows.Close()

	var out []HistoryEvent
	for rows.Next() {
		var (
			ev        HistoryEvent
			batch, at string
		)
		if err := rows.Scan(&ev.ID, &batch, &ev.Op, &ev.From, &ev.To, &at); err != nil {
			return nil, errors.WithMessage(err, "scanning history")
		}
		if ev.Batch, err = uuid.Parse(batch); err != nil {
			return nil, errors.Wrapf(err, "parsing batch of event %d", ev.ID)
		}
		if ev.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, errors.Wrapf(err, "parsing time of event %d", ev.ID)
		}
		out = append(out, ev)
	}
	return out, errors.WithMessage(rows.Err(), "reading history")
}

// Close the database.
func (h *History) Close() error {
	if h == nil {
		return nil
	}
	return h.db.Close()
}
