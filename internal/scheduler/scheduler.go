package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"FundLens/internal/progress"
	"FundLens/internal/recorder"
	"FundLens/internal/telemetry"
)

// Scheduler manages the daemon's cron tasks.
type Scheduler struct {
	Cron         *cron.Cron
	Tracker      *progress.Tracker
	Recorder     recorder.Recorder
	Metrics      *telemetry.Metrics
	TextfilePath string
	Ctx          context.Context
	Log          *zap.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, tr *progress.Tracker, rec recorder.Recorder, m *telemetry.Metrics, textfile string, log *zap.Logger) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Tracker:      tr,
		Recorder:     rec,
		Metrics:      m,
		TextfilePath: textfile,
		Ctx:          ctx,
		Log:          log,
	}
}

// RegisterAll registers the digest and streak tasks.
func (s *Scheduler) RegisterAll(digestCron, streakCron string) error {
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	if _, err := s.Cron.AddFunc(streakCron, func() { s.streakTask() }); err != nil {
		return fmt.Errorf("register streak task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for running tasks.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info("scheduler stopped")
}

// RunDigestNow executes the digest task immediately.
func (s *Scheduler) RunDigestNow() {
	s.digestTask()
}

// RunStreakCheckNow executes the streak task and reports whether the streak is at risk.
func (s *Scheduler) RunStreakCheckNow() bool {
	return s.streakTask()
}

func (s *Scheduler) digestTask() {
	p := s.Tracker.Load(s.Ctx)
	s.Log.Info("progress digest",
		zap.Int("level", p.Level),
		zap.Int("xp", p.XP),
		zap.Int("xpToNext", progress.XPToNextLevel(p)),
		zap.Int("streak", p.Streak),
		zap.Float64("accuracy", progress.Accuracy(p)),
		zap.String("lastPracticeDate", p.LastPracticeDate),
	)

	if err := s.Recorder.RecordProgressSnapshot(&p); err != nil {
		s.Log.Error("record progress snapshot", zap.Error(err))
	}
	s.Metrics.ObserveProgress(p)
	s.flush()
}

func (s *Scheduler) streakTask() bool {
	p := s.Tracker.Load(s.Ctx)
	s.Metrics.ObserveProgress(p)
	s.flush()

	if !s.Tracker.StreakAtRisk(p) {
		return false
	}
	s.Log.Warn("streak at risk: practice today to keep it",
		zap.Int("streak", p.Streak),
		zap.String("lastPracticeDate", p.LastPracticeDate),
	)
	return true
}

func (s *Scheduler) flush() {
	if err := s.Metrics.Flush(s.TextfilePath); err != nil {
		s.Log.Error("flush telemetry", zap.Error(err))
	}
}
