package recorder

import "FundLens/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordEvaluation(_ *Evaluation) error               { return nil }
func (n *NoopRecorder) RecordAttempt(_ *Attempt) error                     { return nil }
func (n *NoopRecorder) RecordProgressSnapshot(_ *model.UserProgress) error { return nil }
func (n *NoopRecorder) Close() error                                       { return nil }
