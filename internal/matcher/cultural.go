package matcher

import (
	"math"
	"strings"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
	"github.com/Kenkin2/kin2-web-sub004/pkg/textx"
)

// CulturalMatcher estimates cultural fit from preference pairs and
// vocabulary overlap between job text and the worker's summary.
type CulturalMatcher struct {
	w config.Weights
}

// NewCulturalMatcher constructs a CulturalMatcher from weight tables.
func NewCulturalMatcher(w config.Weights) CulturalMatcher {
	return CulturalMatcher{w: w}
}

// Match produces the cultural dimension detail: a base fit plus up to
// five independent increments, clamped to [0,1] and scaled to the cap.
func (m CulturalMatcher) Match(worker domain.WorkerProfile, job domain.JobProfile) domain.CulturalDetail {
	jobText := job.Description + " " + job.Requirements

	detail := domain.CulturalDetail{
		SizeMatch:       sizeMatch(worker.PreferredCompanySizes, job.CompanySize),
		IndustryMatch:   industryMatch(worker.PreferredIndustries, job.Industry),
		WorkStyleMatch:  m.workStyleMatch(worker.RemotePreference, job.RemotePreference),
		ValuesOverlap:   m.valuesOverlap(jobText, worker.Summary),
		GrowthAlignment: m.growthAlignment(jobText, worker.Summary),
	}

	fit := m.w.CulturalBase
	if detail.SizeMatch {
		fit += m.w.CulturalIncrement
	}
	if detail.IndustryMatch {
		fit += m.w.CulturalIncrement
	}
	if detail.WorkStyleMatch {
		fit += m.w.CulturalIncrement
	}
	fit += m.w.CulturalIncrement * detail.ValuesOverlap
	fit += m.w.CulturalIncrement * detail.GrowthAlignment

	detail.Fit = clamp01(fit)
	detail.Score = math.Min(detail.Fit*m.w.CulturalMax, m.w.CulturalMax)
	return detail
}

func sizeMatch(preferred []domain.CompanySize, size domain.CompanySize) bool {
	if size == "" {
		return false
	}
	for _, p := range preferred {
		if p == size {
			return true
		}
	}
	return false
}

// industryMatch checks substring containment in either direction over
// normalized text, so casing and punctuation don't block a match.
func industryMatch(preferred []string, industry string) bool {
	industry = textx.Normalize(industry)
	if industry == "" {
		return false
	}
	for _, p := range preferred {
		p = textx.Normalize(p)
		if p == "" {
			continue
		}
		if strings.Contains(industry, p) || strings.Contains(p, industry) {
			return true
		}
	}
	return false
}

// workStyleMatch is a coarser cut of the remote-compatibility table:
// any pairing at or above half compatibility counts.
func (m CulturalMatcher) workStyleMatch(worker, job domain.RemotePreference) bool {
	if row, ok := m.w.RemoteCompatibility[worker]; ok {
		if v, ok := row[job]; ok {
			return v >= 0.5
		}
	}
	return false
}

// valuesOverlap returns the fraction of the values vocabulary present
// in both the job text and the worker summary.
func (m CulturalMatcher) valuesOverlap(jobText, summary string) float64 {
	if len(m.w.ValuesVocabulary) == 0 {
		return 0.0
	}
	jobTokens := textx.TokenSet(jobText)
	workerTokens := textx.TokenSet(summary)
	hits := 0
	for _, v := range m.w.ValuesVocabulary {
		if jobTokens[v] && workerTokens[v] {
			hits++
		}
	}
	return float64(hits) / float64(len(m.w.ValuesVocabulary))
}

// growthAlignment compares growth-keyword hits in the worker summary
// against those in the job text, capped at 1.0.
func (m CulturalMatcher) growthAlignment(jobText, summary string) float64 {
	jobTokens := textx.TokenSet(jobText)
	workerTokens := textx.TokenSet(summary)
	jobHits, workerHits := 0, 0
	for _, kw := range m.w.GrowthKeywords {
		if jobTokens[kw] {
			jobHits++
		}
		if workerTokens[kw] {
			workerHits++
		}
	}
	if jobHits == 0 {
		return 0.0
	}
	return math.Min(float64(workerHits)/float64(jobHits), 1.0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
