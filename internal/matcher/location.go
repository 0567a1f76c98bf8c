package matcher

import (
	"math"
	"strings"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
)

// LocationMatcher combines remote-preference compatibility with a
// location-proximity heuristic.
//
// The proximity heuristic assumes comma-separated "City, State,
// Country" location strings. This is a known limitation inherited from
// the tuned tables: free-text locations that violate the format fall
// through to the floor score rather than erroring.
type LocationMatcher struct {
	w config.Weights
}

// NewLocationMatcher constructs a LocationMatcher from weight tables.
func NewLocationMatcher(w config.Weights) LocationMatcher {
	return LocationMatcher{w: w}
}

// Match produces the location dimension detail. Full remote
// compatibility short-circuits to the maximum score regardless of the
// physical location strings.
func (m LocationMatcher) Match(worker domain.WorkerProfile, job domain.JobProfile) domain.LocationDetail {
	compat := m.remoteCompat(worker.RemotePreference, job.RemotePreference)
	detail := domain.LocationDetail{RemoteCompatibility: compat}
	if compat >= 1.0 {
		detail.FullyCompatible = true
		detail.Proximity = 1.0
		detail.Score = m.w.LocationMax
		return detail
	}
	detail.Proximity = m.proximity(worker.Location, job.Location)
	detail.Score = math.Min(compat*detail.Proximity*m.w.LocationMax, m.w.LocationMax)
	return detail
}

func (m LocationMatcher) remoteCompat(worker, job domain.RemotePreference) float64 {
	if row, ok := m.w.RemoteCompatibility[worker]; ok {
		if v, ok := row[job]; ok {
			return v
		}
	}
	return m.w.DefaultRemoteCompat
}

// proximity walks the heuristic ladder: exact match, city segment,
// state segment, country segment, a "remote" hint in either string,
// then the floor. Missing data on either side yields the unknown
// default.
func (m LocationMatcher) proximity(workerLoc, jobLoc string) float64 {
	workerLoc = strings.TrimSpace(workerLoc)
	jobLoc = strings.TrimSpace(jobLoc)
	if workerLoc == "" || jobLoc == "" {
		return m.w.ProximityUnknown
	}
	if strings.EqualFold(workerLoc, jobLoc) {
		return m.w.ProximityExact
	}
	ws := splitLocation(workerLoc)
	js := splitLocation(jobLoc)
	if segmentEqual(ws, js, 0) {
		return m.w.ProximityCity
	}
	if segmentEqual(ws, js, 1) {
		return m.w.ProximityState
	}
	if segmentEqual(ws, js, 2) {
		return m.w.ProximityCountry
	}
	if containsRemote(workerLoc) || containsRemote(jobLoc) {
		return m.w.ProximityRemoteHint
	}
	return m.w.ProximityFloor
}

func splitLocation(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func segmentEqual(a, b []string, i int) bool {
	if i >= len(a) || i >= len(b) {
		return false
	}
	return a[i] != "" && strings.EqualFold(a[i], b[i])
}

func containsRemote(s string) bool {
	return strings.Contains(strings.ToLower(s), "remote")
}
