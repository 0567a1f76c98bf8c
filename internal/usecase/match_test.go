package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
	"github.com/Kenkin2/kin2-web-sub004/internal/usecase"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func sampleWorker() *domain.WorkerProfile {
	return &domain.WorkerProfile{
		ID:               "worker-1",
		FullName:         "Sam Doe",
		Summary:          "backend engineer who values collaboration and growth",
		Location:         "Austin, Texas, USA",
		RemotePreference: domain.RemoteFull,
		Availability:     domain.AvailabilityAvailable,
		NoticePeriodDays: 14,
		FullTime:         true,
		Skills: []domain.Skill{
			{Name: "Go", Proficiency: domain.ProficiencyExpert, YearsOfExperience: 7},
			{Name: "PostgreSQL", Proficiency: domain.ProficiencyAdvanced, YearsOfExperience: 5},
		},
		Experience: []domain.Experience{{
			Title:       "Backend Engineer",
			Company:     "Acme Fintech",
			Description: "built go services for payments",
			StartDate:   "2019-03-01",
			Current:     true,
		}},
		Education:           []domain.Education{{Degree: "BSc Computer Science"}},
		PreferredIndustries: []string{"fintech"},
	}
}

func sampleJob() *domain.JobProfile {
	return &domain.JobProfile{
		ID:               "job-1",
		Title:            "Backend Engineer",
		Description:      "build go services for payments with a team that values collaboration",
		Requirements:     "Bachelor's degree and 5+ years of go",
		Location:         "Austin, Texas, USA",
		RemotePreference: domain.RemoteFull,
		EmploymentType:   domain.EmploymentFullTime,
		ExperienceLevel:  domain.LevelSenior,
		RequiredSkills:   []domain.SkillRequirement{{Name: "Go", Importance: 1}},
		PreferredSkills:  []domain.SkillRequirement{{Name: "PostgreSQL", Importance: 0.5}},
		Industry:         "fintech",
	}
}

func TestComputeMatch_MissingEntity(t *testing.T) {
	t.Parallel()
	svc := usecase.NewMatchService(config.DefaultWeights())

	_, err := svc.ComputeMatch(context.Background(), nil, sampleJob())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ComputeMatch(context.Background(), sampleWorker(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	blank := sampleWorker()
	blank.ID = ""
	_, err = svc.ComputeMatch(context.Background(), blank, sampleJob())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComputeMatch_MissingJobTitleIsInvalid(t *testing.T) {
	t.Parallel()
	svc := usecase.NewMatchService(config.DefaultWeights())

	job := sampleJob()
	job.Title = ""
	_, err := svc.ComputeMatch(context.Background(), sampleWorker(), job)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestComputeMatch_BoundsAndSum(t *testing.T) {
	t.Parallel()
	svc := usecase.NewMatchServiceWithClock(config.DefaultWeights(), fixedClock)

	res, err := svc.ComputeMatch(context.Background(), sampleWorker(), sampleJob())
	require.NoError(t, err)

	caps := []float64{30, 25, 15, 15, 10, 5}
	sum := 0.0
	for i, sub := range res.SubScores() {
		assert.GreaterOrEqual(t, sub.Score, 0.0, sub.Dimension)
		assert.LessOrEqual(t, sub.Score, caps[i], sub.Dimension)
		sum += sub.Score
	}
	assert.InDelta(t, sum, res.Overall, 1e-9)
	assert.GreaterOrEqual(t, res.Overall, 0.0)
	assert.LessOrEqual(t, res.Overall, 100.0)
	assert.GreaterOrEqual(t, res.Confidence, 0.0)
	assert.LessOrEqual(t, res.Confidence, 1.0)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "worker-1", res.WorkerID)
	assert.Equal(t, "job-1", res.JobID)
	assert.Equal(t, fixedClock().UTC(), res.CreatedAt)
}

func TestComputeMatch_Deterministic(t *testing.T) {
	t.Parallel()
	svc := usecase.NewMatchServiceWithClock(config.DefaultWeights(), fixedClock)

	a, err := svc.ComputeMatch(context.Background(), sampleWorker(), sampleJob())
	require.NoError(t, err)
	b, err := svc.ComputeMatch(context.Background(), sampleWorker(), sampleJob())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestComputeMatch_ResultIDDerivedFromPair(t *testing.T) {
	t.Parallel()
	svc := usecase.NewMatchServiceWithClock(config.DefaultWeights(), fixedClock)

	a, err := svc.ComputeMatch(context.Background(), sampleWorker(), sampleJob())
	require.NoError(t, err)

	otherJob := sampleJob()
	otherJob.ID = "job-2"
	b, err := svc.ComputeMatch(context.Background(), sampleWorker(), otherJob)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestComputeMatch_NeverMutatesInputs(t *testing.T) {
	t.Parallel()
	svc := usecase.NewMatchServiceWithClock(config.DefaultWeights(), fixedClock)

	worker := sampleWorker()
	job := sampleJob()
	workerCopy := *worker
	jobCopy := *job

	_, err := svc.ComputeMatch(context.Background(), worker, job)
	require.NoError(t, err)
	assert.Equal(t, workerCopy, *worker)
	assert.Equal(t, jobCopy, *job)
}

func TestComputeMatch_DegradedProfileStillScores(t *testing.T) {
	t.Parallel()
	svc := usecase.NewMatchService(config.DefaultWeights())

	worker := &domain.WorkerProfile{ID: "worker-2"}
	res, err := svc.ComputeMatch(context.Background(), worker, sampleJob())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Skills.Score)
	assert.Equal(t, 0.0, res.Experience.Score)
	assert.Equal(t, 0.0, res.Education.Score)
	assert.NotEmpty(t, res.AreasToImprove)
	// The job's required skill is assessed even against an empty skill set.
	assert.Contains(t, res.AreasToImprove, "1 required skill(s) are missing from the profile")
}

func TestRecommendationFor_TierBoundaries(t *testing.T) {
	t.Parallel()
	w := config.DefaultWeights()

	tests := []struct {
		overall float64
		want    domain.Recommendation
	}{
		{overall: 100, want: domain.StronglyRecommend},
		{overall: 90, want: domain.StronglyRecommend},
		{overall: 89.99, want: domain.Recommend},
		{overall: 75, want: domain.Recommend},
		{overall: 74.99, want: domain.Consider},
		{overall: 60, want: domain.Consider},
		{overall: 59.99, want: domain.NotRecommend},
		{overall: 40, want: domain.NotRecommend},
		{overall: 39.99, want: domain.Reject},
		{overall: 0, want: domain.Reject},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, usecase.RecommendationFor(tt.overall, w), "overall=%v", tt.overall)
	}
}

func TestComputeMatch_ConfidenceMonotonicInCompleteness(t *testing.T) {
	t.Parallel()
	svc := usecase.NewMatchServiceWithClock(config.DefaultWeights(), fixedClock)

	sparse := &domain.WorkerProfile{ID: "worker-3"}
	resSparse, err := svc.ComputeMatch(context.Background(), sparse, sampleJob())
	require.NoError(t, err)

	richer := &domain.WorkerProfile{ID: "worker-3", Summary: "engineer", Location: "Austin, Texas, USA"}
	resRicher, err := svc.ComputeMatch(context.Background(), richer, sampleJob())
	require.NoError(t, err)

	resFull, err := svc.ComputeMatch(context.Background(), sampleWorker(), sampleJob())
	require.NoError(t, err)

	assert.Greater(t, resRicher.Confidence, resSparse.Confidence)
	assert.Greater(t, resFull.Confidence, resRicher.Confidence)
}

func TestComputeMatch_SkillNarratives(t *testing.T) {
	t.Parallel()
	svc := usecase.NewMatchServiceWithClock(config.DefaultWeights(), fixedClock)

	res, err := svc.ComputeMatch(context.Background(), sampleWorker(), sampleJob())
	require.NoError(t, err)
	// Go (required) and PostgreSQL (preferred) both match exactly.
	assert.Contains(t, res.Strengths, "2 skill(s) are an excellent match for this role")

	job := sampleJob()
	job.RequiredSkills = append(job.RequiredSkills, domain.SkillRequirement{Name: "Haskell", Importance: 1})
	res, err = svc.ComputeMatch(context.Background(), sampleWorker(), job)
	require.NoError(t, err)
	assert.Contains(t, res.AreasToImprove, "1 required skill(s) are missing from the profile")
}
