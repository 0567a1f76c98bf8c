package usecase

import (
	"fmt"
	"strings"

	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
)

// Explanation is the human-readable rendering of a MatchResult.
type Explanation struct {
	Summary         string
	Breakdown       []DimensionBreakdown
	Strengths       []string
	AreasToImprove  []string
	ConfidenceLabel string
}

// DimensionBreakdown reports one dimension's score against its cap.
type DimensionBreakdown struct {
	Dimension string
	Score     float64
	Max       float64
	Percent   float64
}

// Confidence labels, from most to least complete input data.
const (
	ConfidenceVeryHigh = "VERY_HIGH"
	ConfidenceHigh     = "HIGH"
	ConfidenceModerate = "MODERATE"
	ConfidenceLow      = "LOW"
)

// Explain renders a previously computed MatchResult into text. It is a
// pure function of the result: no profile data is consulted.
func (s *MatchService) Explain(res domain.MatchResult) Explanation {
	caps := []float64{
		s.weights.SkillsMax, s.weights.ExperienceMax, s.weights.LocationMax,
		s.weights.AvailabilityMax, s.weights.EducationMax, s.weights.CulturalMax,
	}
	subs := res.SubScores()
	breakdown := make([]DimensionBreakdown, 0, len(subs))
	for i, sub := range subs {
		pct := 0.0
		if caps[i] > 0 {
			pct = sub.Score / caps[i] * 100
		}
		breakdown = append(breakdown, DimensionBreakdown{
			Dimension: sub.Dimension,
			Score:     sub.Score,
			Max:       caps[i],
			Percent:   pct,
		})
	}
	return Explanation{
		Summary:         summaryText(res),
		Breakdown:       breakdown,
		Strengths:       res.Strengths,
		AreasToImprove:  res.AreasToImprove,
		ConfidenceLabel: ConfidenceLabel(res.Confidence),
	}
}

// ConfidenceLabel maps a confidence value to its discrete label.
func ConfidenceLabel(confidence float64) string {
	switch {
	case confidence >= 0.9:
		return ConfidenceVeryHigh
	case confidence >= 0.75:
		return ConfidenceHigh
	case confidence >= 0.6:
		return ConfidenceModerate
	default:
		return ConfidenceLow
	}
}

func summaryText(res domain.MatchResult) string {
	verdict := map[domain.Recommendation]string{
		domain.StronglyRecommend: "an exceptional match",
		domain.Recommend:         "a strong match",
		domain.Consider:          "a possible match worth reviewing",
		domain.NotRecommend:      "a weak match",
		domain.Reject:            "not a match",
	}[res.Recommendation]
	return fmt.Sprintf("Overall compatibility %.1f/100 (%s): %s.",
		res.Overall, strings.ToLower(string(res.Recommendation)), verdict)
}
