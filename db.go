package main

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SyncRun is one recorded sync invocation in the local history log.
type SyncRun struct {
	ID                int64
	StartedAt         time.Time
	FinishedAt        time.Time
	ChannelsProcessed int
	MessagesSynced    int
	ErrorCount        int
	ErrorDetail       string
}

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS sync_runs (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at         DATETIME NOT NULL,
		finished_at        DATETIME NOT NULL,
		channels_processed INTEGER NOT NULL DEFAULT 0,
		messages_synced    INTEGER NOT NULL DEFAULT 0,
		error_count        INTEGER NOT NULL DEFAULT 0,
		error_detail       TEXT DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_sync_runs_started_at ON sync_runs(started_at);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return db, nil
}

func InsertSyncRun(db *sql.DB, run SyncRun) error {
	_, err := db.Exec(
		`INSERT INTO sync_runs (started_at, finished_at, channels_processed, messages_synced, error_count, error_detail)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.StartedAt, run.FinishedAt, run.ChannelsProcessed,
		run.MessagesSynced, run.ErrorCount, run.ErrorDetail,
	)
	return err
}

func RecentSyncRuns(db *sql.DB, limit int) ([]SyncRun, error) {
	rows, err := db.Query(
		`SELECT id, started_at, finished_at, channels_processed, messages_synced, error_count, error_detail
		 FROM sync_runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []SyncRun
	for rows.Next() {
		var run SyncRun
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.ChannelsProcessed,
			&run.MessagesSynced, &run.ErrorCount, &run.ErrorDetail); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
