package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"FundLens/internal/model"
)

// SQLiteRecorder persists history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
	log *zap.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *zap.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so dashboards can read while the daemon writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, now: time.Now, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	return r.execAll(migrations)
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS evaluations (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp       INTEGER NOT NULL,
		source          TEXT,
		tvpi            REAL,
		dpi             REAL,
		irr             REAL,
		health_pct      REAL,
		health_status   TEXT,
		excellent_count INTEGER,
		poor_count      INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_ts ON evaluations(timestamp)`,

	`CREATE TABLE IF NOT EXISTS practice_attempts (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp   INTEGER NOT NULL,
		scenario_id TEXT,
		estimates   TEXT,
		actuals     TEXT,
		correct     INTEGER,
		xp          INTEGER,
		level       INTEGER,
		streak      INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attempts_ts ON practice_attempts(timestamp)`,

	`CREATE TABLE IF NOT EXISTS progress_snapshots (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp          INTEGER NOT NULL,
		total_attempts     INTEGER,
		correct_estimates  INTEGER,
		streak             INTEGER,
		last_practice_date TEXT,
		xp                 INTEGER,
		level              INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON progress_snapshots(timestamp)`,
}

func (r *SQLiteRecorder) execAll(stmts []string) error {
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %.40q: %w", s, err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordEvaluation(evt *Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO evaluations
		(timestamp, source, tvpi, dpi, irr, health_pct, health_status, excellent_count, poor_count)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		r.now().Unix(), evt.Source, evt.TVPI, evt.DPI, evt.IRR,
		evt.HealthPct, string(evt.HealthStatus), evt.ExcellentCount, evt.PoorCount,
	)
	return err
}

func (r *SQLiteRecorder) RecordAttempt(evt *Attempt) error {
	estimates, err := json.Marshal(evt.Estimates)
	if err != nil {
		return fmt.Errorf("marshal estimates: %w", err)
	}
	actuals, err := json.Marshal(evt.Actuals)
	if err != nil {
		return fmt.Errorf("marshal actuals: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.db.Exec(`INSERT INTO practice_attempts
		(timestamp, scenario_id, estimates, actuals, correct, xp, level, streak)
		VALUES (?,?,?,?,?,?,?,?)`,
		r.now().Unix(), evt.ScenarioID, string(estimates), string(actuals),
		evt.Correct, evt.XP, evt.Level, evt.Streak,
	)
	return err
}

func (r *SQLiteRecorder) RecordProgressSnapshot(p *model.UserProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO progress_snapshots
		(timestamp, total_attempts, correct_estimates, streak, last_practice_date, xp, level)
		VALUES (?,?,?,?,?,?,?)`,
		r.now().Unix(), p.TotalAttempts, p.CorrectEstimates, p.Streak,
		p.LastPracticeDate, p.XP, p.Level,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
