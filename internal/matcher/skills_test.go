package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
	"github.com/Kenkin2/kin2-web-sub004/internal/matcher"
)

func TestSkillMatcher_ZeroSkillsYieldsZero(t *testing.T) {
	t.Parallel()
	m := matcher.NewSkillMatcher(config.DefaultWeights())

	job := domain.JobProfile{RequiredSkills: []domain.SkillRequirement{{Name: "Python", Importance: 1}}}
	detail := m.Match(domain.WorkerProfile{}, job)
	assert.Equal(t, 0.0, detail.Score)
	// The job's skills are still assessed so the gap is reported.
	require.Len(t, detail.Assessments, 1)
	assert.Equal(t, domain.MatchMissing, detail.Assessments[0].Level)
	assert.True(t, detail.Assessments[0].Required)

	worker := domain.WorkerProfile{Skills: []domain.Skill{{Name: "Python"}}}
	detail = m.Match(worker, domain.JobProfile{})
	assert.Equal(t, 0.0, detail.Score)
	assert.Empty(t, detail.Assessments)
}

func TestSkillMatcher_SingleExactMatchHitsCeiling(t *testing.T) {
	t.Parallel()
	m := matcher.NewSkillMatcher(config.DefaultWeights())

	worker := domain.WorkerProfile{Skills: []domain.Skill{
		{Name: "Python", Proficiency: domain.ProficiencyAdvanced, YearsOfExperience: 5},
	}}
	job := domain.JobProfile{RequiredSkills: []domain.SkillRequirement{{Name: "Python", Importance: 1}}}

	detail := m.Match(worker, job)
	// blended 0.7 x proficiency 1.0 x experience 0.95 x 100 = 66.5, clamped.
	assert.Equal(t, 30.0, detail.Score)
	assert.InDelta(t, 1.0, detail.RequiredRatio, 1e-12)
	assert.InDelta(t, 1.0, detail.ProficiencyMultiplier, 1e-12)
	assert.InDelta(t, 0.95, detail.ExperienceMultiplier, 1e-12)
	require.Len(t, detail.Assessments, 1)
	assert.Equal(t, domain.MatchExcellent, detail.Assessments[0].Level)
	assert.True(t, detail.Assessments[0].Required)
}

func TestSkillMatcher_PreferredOnlyBlend(t *testing.T) {
	t.Parallel()
	m := matcher.NewSkillMatcher(config.DefaultWeights())

	worker := domain.WorkerProfile{Skills: []domain.Skill{
		{Name: "Python", Proficiency: domain.ProficiencyExpert, YearsOfExperience: 0},
	}}
	job := domain.JobProfile{PreferredSkills: []domain.SkillRequirement{{Name: "Python", Importance: 1}}}

	detail := m.Match(worker, job)
	// blended 0.3 x proficiency 1.2 x experience 0.7 x 100.
	assert.InDelta(t, 25.2, detail.Score, 1e-9)
	assert.Equal(t, 0.0, detail.RequiredRatio)
	assert.InDelta(t, 1.0, detail.PreferredRatio, 1e-12)
}

func TestSkillMatcher_ProficiencyMonotonic(t *testing.T) {
	t.Parallel()
	m := matcher.NewSkillMatcher(config.DefaultWeights())
	job := domain.JobProfile{RequiredSkills: []domain.SkillRequirement{{Name: "Go", Importance: 1}}}

	prev := -1.0
	for _, p := range []domain.Proficiency{
		domain.ProficiencyBeginner,
		domain.ProficiencyIntermediate,
		domain.ProficiencyAdvanced,
		domain.ProficiencyExpert,
	} {
		worker := domain.WorkerProfile{Skills: []domain.Skill{{Name: "Go", Proficiency: p, YearsOfExperience: 1}}}
		score := m.Match(worker, job).Score
		assert.GreaterOrEqual(t, score, prev, "proficiency %s must not lower the score", p)
		prev = score
	}
}

func TestSkillMatcher_MissingRequiredSkillReported(t *testing.T) {
	t.Parallel()
	m := matcher.NewSkillMatcher(config.DefaultWeights())

	worker := domain.WorkerProfile{Skills: []domain.Skill{
		{Name: "Python", Proficiency: domain.ProficiencyAdvanced, YearsOfExperience: 4},
	}}
	job := domain.JobProfile{RequiredSkills: []domain.SkillRequirement{
		{Name: "Python", Importance: 1},
		{Name: "Kubernetes", Importance: 1},
	}}

	detail := m.Match(worker, job)
	require.Len(t, detail.Assessments, 2)
	assert.Equal(t, domain.MatchExcellent, detail.Assessments[0].Level)
	assert.Equal(t, domain.MatchMissing, detail.Assessments[1].Level)
	assert.Less(t, detail.Score, 30.0)
	assert.Greater(t, detail.Score, 0.0)
}

func TestSkillMatcher_NearSynonymCountsAsMatch(t *testing.T) {
	t.Parallel()
	m := matcher.NewSkillMatcher(config.DefaultWeights())

	worker := domain.WorkerProfile{Skills: []domain.Skill{
		{Name: "Javascript", Proficiency: domain.ProficiencyExpert, YearsOfExperience: 6},
	}}
	job := domain.JobProfile{RequiredSkills: []domain.SkillRequirement{{Name: "JavaScript", Importance: 1}}}

	detail := m.Match(worker, job)
	require.Len(t, detail.Assessments, 1)
	assert.Equal(t, domain.MatchExcellent, detail.Assessments[0].Level)
	// Above the match threshold, so the expert multiplier applies.
	assert.InDelta(t, 1.2, detail.ProficiencyMultiplier, 1e-12)
}
