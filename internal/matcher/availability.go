package matcher

import (
	"math"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
)

// AvailabilityMatcher blends availability status, notice period, and
// schedule compatibility into one bounded score.
type AvailabilityMatcher struct {
	w config.Weights
}

// NewAvailabilityMatcher constructs an AvailabilityMatcher from weight
// tables.
func NewAvailabilityMatcher(w config.Weights) AvailabilityMatcher {
	return AvailabilityMatcher{w: w}
}

// Match produces the availability dimension detail.
func (m AvailabilityMatcher) Match(worker domain.WorkerProfile, job domain.JobProfile) domain.AvailabilityDetail {
	detail := domain.AvailabilityDetail{
		StatusScore:   m.statusScore(worker.Availability),
		NoticeScore:   m.noticeScore(worker.NoticePeriodDays),
		ScheduleScore: m.scheduleScore(worker, job),
	}
	blended := m.w.StatusWeight*detail.StatusScore +
		m.w.NoticeWeight*detail.NoticeScore +
		m.w.ScheduleWeight*detail.ScheduleScore
	detail.Score = math.Min(blended*m.w.AvailabilityMax, m.w.AvailabilityMax)
	return detail
}

func (m AvailabilityMatcher) statusScore(status domain.AvailabilityStatus) float64 {
	if v, ok := m.w.AvailabilityStatusScores[status]; ok {
		return v
	}
	return m.w.DefaultStatusScore
}

func (m AvailabilityMatcher) noticeScore(days int) float64 {
	for _, tier := range m.w.NoticeTiers {
		if days <= tier.MaxDays {
			return tier.Score
		}
	}
	return m.w.NoticeFloor
}

func (m AvailabilityMatcher) scheduleScore(worker domain.WorkerProfile, job domain.JobProfile) float64 {
	switch {
	case job.EmploymentType == domain.EmploymentFullTime && !worker.FullTime:
		return m.w.FullTimeJobPartTimeFit
	case job.EmploymentType == domain.EmploymentPartTime && worker.FullTime:
		return m.w.PartTimeJobFullTimeFit
	default:
		return 1.0
	}
}
