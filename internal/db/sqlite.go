// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/rutina/internal/profile"
	"github.com/javiermolinar/rutina/internal/session"
	"github.com/javiermolinar/rutina/internal/task"
)

// SQLite implements session.Store using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveState replaces the stored state for st.Date: the (single) profile
// with its habits, the day's tasks with completion flags, and the
// holiday flag.
func (s *SQLite) SaveState(ctx context.Context, st *session.State) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := saveProfileTx(ctx, tx, st.Profile); err != nil {
		return err
	}

	day := st.Date.Format("2006-01-02")

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO day_state (day, holiday) VALUES (?, ?)
		 ON CONFLICT(day) DO UPDATE SET holiday = excluded.holiday`,
		day, boolToInt(st.Holiday),
	); err != nil {
		return fmt.Errorf("saving day state: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE day = ?`, day); err != nil {
		return fmt.Errorf("clearing day tasks: %w", err)
	}

	completed := make(map[string]bool, len(st.CompletedIDs))
	for _, id := range st.CompletedIDs {
		completed[id] = true
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (id, day, title, start_at, end_at, fixed, source, done, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range st.Day {
		if _, err := stmt.ExecContext(ctx,
			t.ID,
			day,
			t.Title,
			t.Start.Format(time.RFC3339),
			t.End.Format(time.RFC3339),
			boolToInt(t.Fixed),
			string(t.Source),
			boolToInt(completed[t.ID]),
			t.CreatedAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("inserting task %q: %w", t.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// LoadState returns the stored state for the given date, or nil if
// nothing has ever been saved.
func (s *SQLite) LoadState(ctx context.Context, date time.Time) (*session.State, error) {
	p, err := s.loadProfile(ctx)
	if err != nil {
		return nil, err
	}

	day := date.Format("2006-01-02")

	var holiday int
	hasDay := true
	err = s.db.QueryRowContext(ctx, `SELECT holiday FROM day_state WHERE day = ?`, day).Scan(&holiday)
	if err == sql.ErrNoRows {
		hasDay = false
	} else if err != nil {
		return nil, fmt.Errorf("querying day state: %w", err)
	}

	tasks, completedIDs, err := s.loadTasks(ctx, day)
	if err != nil {
		return nil, err
	}

	if p == nil && !hasDay && len(tasks) == 0 {
		return nil, nil
	}

	return &session.State{
		Date:         date,
		Profile:      p,
		Day:          tasks,
		CompletedIDs: completedIDs,
		Holiday:      holiday != 0,
	}, nil
}

func (s *SQLite) loadTasks(ctx context.Context, day string) (tasks []*task.Task, completedIDs []string, err error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, start_at, end_at, fixed, source, done, created_at
		FROM tasks
		WHERE day = ?
		ORDER BY start_at, created_at
	`, day)
	if err != nil {
		return nil, nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			t              task.Task
			startAt, endAt string
			createdAt      string
			fixed, done    int
			source         string
		)
		if err := rows.Scan(&t.ID, &t.Title, &startAt, &endAt, &fixed, &source, &done, &createdAt); err != nil {
			return nil, nil, fmt.Errorf("scanning task: %w", err)
		}

		if t.Start, err = time.Parse(time.RFC3339, startAt); err != nil {
			return nil, nil, fmt.Errorf("parsing start time: %w", err)
		}
		if t.End, err = time.Parse(time.RFC3339, endAt); err != nil {
			return nil, nil, fmt.Errorf("parsing end time: %w", err)
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, nil, fmt.Errorf("parsing created at: %w", err)
		}
		t.Fixed = fixed != 0
		t.Source = task.Source(source)

		if done != 0 {
			completedIDs = append(completedIDs, t.ID)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, completedIDs, nil
}

func saveProfileTx(ctx context.Context, tx *sql.Tx, p *profile.Profile) error {
	if p == nil || p.IsZero() {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO profile (id, name, role, shift, work_start, work_end,
			wake_clock, sleep_clock, breakfast_clock, dinner_clock)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, role = excluded.role, shift = excluded.shift,
			work_start = excluded.work_start, work_end = excluded.work_end,
			wake_clock = excluded.wake_clock, sleep_clock = excluded.sleep_clock,
			breakfast_clock = excluded.breakfast_clock, dinner_clock = excluded.dinner_clock
	`, p.Name, string(p.Role), string(p.Shift), p.WorkStart, p.WorkEnd,
		p.WakeClock, p.SleepClock, p.BreakfastClock, p.DinnerClock,
	); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM habits`); err != nil {
		return fmt.Errorf("clearing habits: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO habits (slot, position, name, clock) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, h := range p.MorningHabits {
		if _, err := stmt.ExecContext(ctx, "morning", i, h.Name, h.Clock); err != nil {
			return fmt.Errorf("inserting habit %q: %w", h.Name, err)
		}
	}
	for i, h := range p.EveningHabits {
		if _, err := stmt.ExecContext(ctx, "evening", i, h.Name, h.Clock); err != nil {
			return fmt.Errorf("inserting habit %q: %w", h.Name, err)
		}
	}

	return nil
}

func (s *SQLite) loadProfile(ctx context.Context) (*profile.Profile, error) {
	var p profile.Profile
	var role, shift string

	err := s.db.QueryRowContext(ctx, `
		SELECT name, role, shift, work_start, work_end,
		       wake_clock, sleep_clock, breakfast_clock, dinner_clock
		FROM profile WHERE id = 1
	`).Scan(&p.Name, &role, &shift, &p.WorkStart, &p.WorkEnd,
		&p.WakeClock, &p.SleepClock, &p.BreakfastClock, &p.DinnerClock)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}
	p.Role = profile.Role(role)
	p.Shift = profile.Shift(shift)

	rows, err := s.db.QueryContext(ctx,
		`SELECT slot, name, clock FROM habits ORDER BY slot, position`)
	if err != nil {
		return nil, fmt.Errorf("querying habits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var slot string
		var h profile.Habit
		if err := rows.Scan(&slot, &h.Name, &h.Clock); err != nil {
			return nil, fmt.Errorf("scanning habit: %w", err)
		}
		if slot == "evening" {
			p.EveningHabits = append(p.EveningHabits, h)
		} else {
			p.MorningHabits = append(p.MorningHabits, h)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habits: %w", err)
	}

	return &p, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
