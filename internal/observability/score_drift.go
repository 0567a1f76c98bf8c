package observability

import (
	"log/slog"
	"sync"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
)

// MatchDriftMonitor tracks per-dimension score drift from a baseline.
// Collaborators that store results can feed every computed match
// through Observe and alert when the recent average departs from the
// configured baseline, e.g. after a weights-table change.
type MatchDriftMonitor struct {
	baselineScores map[string]float64
	recentScores   map[string][]float64
	windowSize     int
	driftThreshold float64
	weightsVersion string
	mu             sync.RWMutex
}

// NewMatchDriftMonitor creates a drift monitor. weightsVersion labels
// log lines so drift can be attributed to a weights-table revision.
func NewMatchDriftMonitor(weightsVersion string, windowSize int, driftThreshold float64) *MatchDriftMonitor {
	return &MatchDriftMonitor{
		baselineScores: make(map[string]float64),
		recentScores:   make(map[string][]float64),
		windowSize:     windowSize,
		driftThreshold: driftThreshold,
		weightsVersion: weightsVersion,
	}
}

// NewMatchDriftMonitorFromConfig constructs a drift monitor from the
// process configuration's window and threshold knobs.
func NewMatchDriftMonitorFromConfig(cfg config.Config, weightsVersion string) *MatchDriftMonitor {
	return NewMatchDriftMonitor(weightsVersion, cfg.DriftWindowSize, cfg.DriftThreshold)
}

// UpdateBaseline sets the expected score for a dimension.
func (m *MatchDriftMonitor) UpdateBaseline(dimension string, score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.baselineScores[dimension] = score
	slog.Info("updated baseline score",
		slog.String("dimension", dimension),
		slog.Float64("score", score),
		slog.String("weights_version", m.weightsVersion))
}

// Observe records every sub-score of a result and checks for drift.
func (m *MatchDriftMonitor) Observe(res domain.MatchResult) {
	for _, sub := range res.SubScores() {
		m.RecordScore(sub.Dimension, sub.Score)
	}
	m.RecordScore("overall", res.Overall)
}

// RecordScore records a new score for a dimension and warns when the
// windowed average drifts past the threshold.
func (m *MatchDriftMonitor) RecordScore(dimension string, score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.recentScores[dimension] == nil {
		m.recentScores[dimension] = make([]float64, 0, m.windowSize)
	}
	m.recentScores[dimension] = append(m.recentScores[dimension], score)
	if len(m.recentScores[dimension]) > m.windowSize {
		m.recentScores[dimension] = m.recentScores[dimension][1:]
	}

	if len(m.recentScores[dimension]) >= m.windowSize {
		drift := m.calculateDrift(dimension)
		if drift > m.driftThreshold {
			slog.Warn("match score drift detected",
				slog.String("dimension", dimension),
				slog.Float64("drift", drift),
				slog.Float64("threshold", m.driftThreshold),
				slog.String("weights_version", m.weightsVersion))
		}
	}
}

// GetDrift returns the current drift for a dimension.
func (m *MatchDriftMonitor) GetDrift(dimension string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.calculateDrift(dimension)
}

// GetBaseline returns the baseline score for a dimension.
func (m *MatchDriftMonitor) GetBaseline(dimension string) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	score, exists := m.baselineScores[dimension]
	return score, exists
}

// GetRecentScores returns a copy of the recent scores for a dimension.
func (m *MatchDriftMonitor) GetRecentScores(dimension string) []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recent := m.recentScores[dimension]
	out := make([]float64, len(recent))
	copy(out, recent)
	return out
}

func (m *MatchDriftMonitor) calculateDrift(dimension string) float64 {
	baseline, exists := m.baselineScores[dimension]
	if !exists {
		return 0.0
	}
	recent := m.recentScores[dimension]
	if len(recent) == 0 {
		return 0.0
	}
	avg := 0.0
	for _, score := range recent {
		avg += score
	}
	avg /= float64(len(recent))

	drift := avg - baseline
	if drift < 0 {
		drift = -drift
	}
	return drift
}
