// Package usecase contains the match scoring services: the aggregator
// that turns a worker/job pair into a MatchResult, and the pure explain
// and ranking helpers built on top of it.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
	"github.com/Kenkin2/kin2-web-sub004/internal/matcher"
	"github.com/Kenkin2/kin2-web-sub004/internal/observability"
)

// MatchService is the public entry point of the scoring engine. It is
// stateless apart from its weight tables and safe for concurrent use;
// every call computes a fresh MatchResult and never mutates its inputs.
type MatchService struct {
	weights      config.Weights
	skills       matcher.SkillMatcher
	experience   matcher.ExperienceMatcher
	location     matcher.LocationMatcher
	availability matcher.AvailabilityMatcher
	education    matcher.EducationMatcher
	cultural     matcher.CulturalMatcher
	validate     *validator.Validate
	now          func() time.Time
}

// NewMatchService constructs a MatchService from weight tables.
func NewMatchService(w config.Weights) *MatchService {
	return newMatchService(w, time.Now)
}

// NewMatchServiceWithClock constructs a MatchService with a fixed
// clock, for deterministic duration math and timestamps.
func NewMatchServiceWithClock(w config.Weights, now func() time.Time) *MatchService {
	if now == nil {
		now = time.Now
	}
	return newMatchService(w, now)
}

func newMatchService(w config.Weights, now func() time.Time) *MatchService {
	return &MatchService{
		weights:      w,
		skills:       matcher.NewSkillMatcher(w),
		experience:   matcher.NewExperienceMatcher(w, now),
		location:     matcher.NewLocationMatcher(w),
		availability: matcher.NewAvailabilityMatcher(w),
		education:    matcher.NewEducationMatcher(w),
		cultural:     matcher.NewCulturalMatcher(w),
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		now:          now,
	}
}

// ComputeMatch scores worker against job. It returns a NotFound-wrapped
// error when either record is absent or unidentifiable; missing
// optional fields never error and instead degrade the affected
// dimension toward zero.
func (s *MatchService) ComputeMatch(ctx context.Context, worker *domain.WorkerProfile, job *domain.JobProfile) (domain.MatchResult, error) {
	if worker == nil || worker.ID == "" {
		return domain.MatchResult{}, fmt.Errorf("%w: worker profile", domain.ErrNotFound)
	}
	if job == nil || job.ID == "" {
		return domain.MatchResult{}, fmt.Errorf("%w: job profile", domain.ErrNotFound)
	}
	if err := s.validate.StructCtx(ctx, worker); err != nil {
		return domain.MatchResult{}, fmt.Errorf("%w: worker profile: %v", domain.ErrInvalidArgument, err)
	}
	if err := s.validate.StructCtx(ctx, job); err != nil {
		return domain.MatchResult{}, fmt.Errorf("%w: job profile: %v", domain.ErrInvalidArgument, err)
	}

	res := domain.MatchResult{
		ID:           matchID(worker.ID, job.ID),
		WorkerID:     worker.ID,
		JobID:        job.ID,
		Skills:       s.skills.Match(*worker, *job),
		Experience:   s.experience.Match(*worker, *job),
		Location:     s.location.Match(*worker, *job),
		Availability: s.availability.Match(*worker, *job),
		Education:    s.education.Match(*worker, *job),
		Cultural:     s.cultural.Match(*worker, *job),
		CreatedAt:    s.now().UTC(),
	}
	for _, sub := range res.SubScores() {
		res.Overall += sub.Score
	}
	res.Recommendation = RecommendationFor(res.Overall, s.weights)
	res.Confidence = s.confidence(*worker, *job)
	res.Strengths, res.AreasToImprove = s.narrative(res)

	observability.LoggerFromContext(ctx).Debug("match computed",
		"worker_id", res.WorkerID,
		"job_id", res.JobID,
		"overall", res.Overall,
		"recommendation", string(res.Recommendation),
		"confidence", res.Confidence,
	)
	observability.ObserveMatch(res)
	return res, nil
}

// matchID derives the result ID from the worker/job pair, so scoring
// the same pair always yields the same ID.
func matchID(workerID, jobID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(workerID+"\x00"+jobID)).String()
}

// RecommendationFor maps an overall score to its recommendation tier.
func RecommendationFor(overall float64, w config.Weights) domain.Recommendation {
	switch {
	case overall >= w.StrongThreshold:
		return domain.StronglyRecommend
	case overall >= w.RecommendThreshold:
		return domain.Recommend
	case overall >= w.ConsiderThreshold:
		return domain.Consider
	case overall >= w.NotRecommendThreshold:
		return domain.NotRecommend
	default:
		return domain.Reject
	}
}

// confidence reflects input completeness only, independent of match
// quality: a base plus weighted per-entity completeness ratios.
func (s *MatchService) confidence(worker domain.WorkerProfile, job domain.JobProfile) float64 {
	c := s.weights.ConfidenceBase +
		s.weights.ConfidenceWorkerWeight*CompletenessSchemaV1.WorkerCompleteness(worker) +
		s.weights.ConfidenceJobWeight*CompletenessSchemaV1.JobCompleteness(job)
	if c > 1 {
		return 1
	}
	if c < 0 {
		return 0
	}
	return c
}

// narrative derives strengths and areas-to-improve from the dimension
// scores plus the special-cased skill findings.
func (s *MatchService) narrative(res domain.MatchResult) (strengths, improve []string) {
	caps := map[string]float64{
		domain.DimensionSkills:       s.weights.SkillsMax,
		domain.DimensionExperience:   s.weights.ExperienceMax,
		domain.DimensionLocation:     s.weights.LocationMax,
		domain.DimensionAvailability: s.weights.AvailabilityMax,
		domain.DimensionEducation:    s.weights.EducationMax,
		domain.DimensionCultural:     s.weights.CulturalMax,
	}
	for _, sub := range res.SubScores() {
		max := caps[sub.Dimension]
		switch {
		case sub.Score >= s.weights.StrengthRatio*max:
			strengths = append(strengths, strengthMessages[sub.Dimension])
		case sub.Score < s.weights.ImproveRatio*max:
			improve = append(improve, improveMessages[sub.Dimension])
		}
	}

	excellent := 0
	missingRequired := 0
	for _, a := range res.Skills.Assessments {
		if a.Level == domain.MatchExcellent {
			excellent++
		}
		if a.Required && a.Level == domain.MatchMissing {
			missingRequired++
		}
	}
	if excellent > 0 {
		strengths = append(strengths, fmt.Sprintf("%d skill(s) are an excellent match for this role", excellent))
	}
	if missingRequired > 0 {
		improve = append(improve, fmt.Sprintf("%d required skill(s) are missing from the profile", missingRequired))
	}
	return strengths, improve
}

var strengthMessages = map[string]string{
	domain.DimensionSkills:       "strong skill alignment with the role requirements",
	domain.DimensionExperience:   "relevant experience meets or exceeds the role's seniority",
	domain.DimensionLocation:     "location and work arrangement fit well",
	domain.DimensionAvailability: "availability suits the role's timeline",
	domain.DimensionEducation:    "education meets the stated requirements",
	domain.DimensionCultural:     "good cultural alignment with the employer",
}

var improveMessages = map[string]string{
	domain.DimensionSkills:       "skill coverage falls short of the role requirements",
	domain.DimensionExperience:   "experience is below the level this role targets",
	domain.DimensionLocation:     "location or work arrangement is a poor fit",
	domain.DimensionAvailability: "availability may not suit the role's timeline",
	domain.DimensionEducation:    "education does not meet the stated requirements",
	domain.DimensionCultural:     "little cultural overlap with the employer",
}
