package matcher

import (
	"math"
	"strings"
	"time"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
	"github.com/Kenkin2/kin2-web-sub004/pkg/textx"
)

// dateLayouts are tried in order when parsing role start/end dates.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

const hoursPerYear = 24 * 365.25

// ExperienceMatcher scores a worker's role history against a job's
// seniority tier, title, industry, and description.
type ExperienceMatcher struct {
	w   config.Weights
	now func() time.Time
}

// NewExperienceMatcher constructs an ExperienceMatcher. now supplies
// the reference time for roles marked as current.
func NewExperienceMatcher(w config.Weights, now func() time.Time) ExperienceMatcher {
	if now == nil {
		now = time.Now
	}
	return ExperienceMatcher{w: w, now: now}
}

// Match produces the experience dimension detail. An empty role list
// yields a zero score. Roles with unparsable dates are excluded from
// the duration total but still contribute relevance.
func (m ExperienceMatcher) Match(worker domain.WorkerProfile, job domain.JobProfile) domain.ExperienceDetail {
	detail := domain.ExperienceDetail{RequiredYears: m.requiredYears(job.ExperienceLevel)}
	if len(worker.Experience) == 0 {
		return detail
	}

	jobText := job.Description + " " + job.Requirements
	relevanceSum := 0.0
	for _, role := range worker.Experience {
		years := m.roleYears(role)
		relevance := m.roleRelevance(role, job, jobText)
		relevanceSum += relevance
		detail.TotalYears += years
		detail.Roles = append(detail.Roles, domain.RoleAssessment{
			Title:     role.Title,
			Company:   role.Company,
			Years:     years,
			Relevance: relevance,
			Level:     domain.LevelForSimilarity(relevance),
		})
	}

	detail.YearsScore = 1.0
	if detail.RequiredYears > 0 && detail.TotalYears < detail.RequiredYears {
		detail.YearsScore = detail.TotalYears / detail.RequiredYears
	}
	detail.RelevanceScore = relevanceSum / float64(len(worker.Experience))

	blended := m.w.YearsWeight*detail.YearsScore + m.w.RelevanceWeight*detail.RelevanceScore
	detail.Score = math.Min(blended*100, m.w.ExperienceMax)
	return detail
}

func (m ExperienceMatcher) requiredYears(level domain.ExperienceLevel) float64 {
	if years, ok := m.w.RequiredYearsByLevel[level]; ok {
		return years
	}
	return m.w.DefaultRequiredYears
}

// roleYears returns the role duration in fractional years, or 0 when
// either date is missing or malformed.
func (m ExperienceMatcher) roleYears(role domain.Experience) float64 {
	start, ok := parseDate(role.StartDate)
	if !ok {
		return 0
	}
	end := m.now().UTC()
	if !role.Current {
		var parsed bool
		if end, parsed = parseDate(role.EndDate); !parsed {
			return 0
		}
	}
	if end.Before(start) {
		return 0
	}
	return end.Sub(start).Hours() / hoursPerYear
}

// roleRelevance blends title similarity, industry keyword coverage, and
// description token overlap.
func (m ExperienceMatcher) roleRelevance(role domain.Experience, job domain.JobProfile, jobText string) float64 {
	title := textx.Similarity(role.Title, job.Title)
	industry := industryCoverage(job.Industry, role.Company+" "+role.Description)
	overlap := textx.TokenOverlap(role.Description, jobText)
	return m.w.TitleSimilarityWeight*title + m.w.IndustryKeywordWeight*industry + m.w.DescriptionOverlapWeight*overlap
}

// industryCoverage returns the fraction of the job's industry keywords
// present in the role text.
func industryCoverage(industry, roleText string) float64 {
	keywords := textx.TokenSet(industry)
	if len(keywords) == 0 {
		return 0.0
	}
	text := textx.TokenSet(strings.ToLower(roleText))
	hits := 0
	for kw := range keywords {
		if text[kw] {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
