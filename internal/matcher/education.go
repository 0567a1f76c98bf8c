package matcher

import (
	"math"
	"strings"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
	"github.com/Kenkin2/kin2-web-sub004/pkg/textx"
)

// EducationMatcher extracts a required education tier from job
// requirement free text and compares it against the worker's highest
// attained tier.
type EducationMatcher struct {
	w config.Weights
}

// NewEducationMatcher constructs an EducationMatcher from weight tables.
func NewEducationMatcher(w config.Weights) EducationMatcher {
	return EducationMatcher{w: w}
}

// Match produces the education dimension detail. When the job text
// names no tier, the score defaults to half the cap provided the worker
// has any education record at all.
func (m EducationMatcher) Match(worker domain.WorkerProfile, job domain.JobProfile) domain.EducationDetail {
	detail := domain.EducationDetail{WorkerTier: m.highestTier(worker.Education)}

	required, found := m.extractTier(job.Requirements)
	if !found {
		if len(worker.Education) > 0 {
			detail.Score = m.w.EducationDefaultRatio * m.w.EducationMax
		}
		return detail
	}
	detail.TierRequired = true
	detail.RequiredTier = required

	ratio := 1.0
	if detail.WorkerTier < required {
		ratio = float64(detail.WorkerTier) / float64(required)
	}
	detail.Score = math.Min(ratio*m.w.EducationMax, m.w.EducationMax)
	return detail
}

// extractTier scans the keyword families in order; the first family
// with a hit wins.
func (m EducationMatcher) extractTier(text string) (domain.EducationTier, bool) {
	lower := strings.ToLower(text)
	tokens := textx.TokenSet(text)
	for _, family := range m.w.EducationKeywords {
		for _, phrase := range family.Phrases {
			if strings.Contains(lower, phrase) {
				return family.Tier, true
			}
		}
		for _, token := range family.Tokens {
			if tokens[token] {
				return family.Tier, true
			}
		}
	}
	return domain.TierOther, false
}

// highestTier applies the same keyword families to each degree string
// and keeps the maximum on the ordinal scale.
func (m EducationMatcher) highestTier(education []domain.Education) domain.EducationTier {
	highest := domain.TierOther
	for _, ed := range education {
		if tier, ok := m.extractTier(ed.Degree); ok && tier > highest {
			highest = tier
		}
	}
	return highest
}
