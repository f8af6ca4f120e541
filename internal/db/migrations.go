package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS profile (
			id              INTEGER PRIMARY KEY CHECK(id = 1),
			name            TEXT NOT NULL DEFAULT '',
			role            TEXT NOT NULL DEFAULT 'other',
			shift           TEXT NOT NULL DEFAULT 'day',
			work_start      TIME NOT NULL DEFAULT '09:00',
			work_end        TIME NOT NULL DEFAULT '17:00',
			wake_clock      TEXT NOT NULL DEFAULT '',
			sleep_clock     TEXT NOT NULL DEFAULT '',
			breakfast_clock TEXT NOT NULL DEFAULT '',
			dinner_clock    TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS habits (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			slot     TEXT NOT NULL CHECK(slot IN ('morning', 'evening')),
			position INTEGER NOT NULL,
			name     TEXT NOT NULL,
			clock    TIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS day_state (
			day     DATE PRIMARY KEY,
			holiday INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id         TEXT PRIMARY KEY,
			day        DATE NOT NULL,
			title      TEXT NOT NULL,
			start_at   DATETIME NOT NULL,
			end_at     DATETIME NOT NULL,
			fixed      INTEGER NOT NULL DEFAULT 0,
			source     TEXT NOT NULL CHECK(source IN ('template', 'manual')),
			done       INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_day ON tasks(day);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
