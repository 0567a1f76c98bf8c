// Package matcher implements the six dimension matchers that feed the
// match aggregator. Every matcher is a pure function of its inputs and
// the weight tables it was constructed with; missing optional data
// degrades the score toward zero instead of erroring.
package matcher

import (
	"math"

	"github.com/Kenkin2/kin2-web-sub004/internal/config"
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
	"github.com/Kenkin2/kin2-web-sub004/pkg/textx"
)

// SkillMatcher scores a worker's skill set against a job's required and
// preferred skill lists.
type SkillMatcher struct {
	w config.Weights
}

// NewSkillMatcher constructs a SkillMatcher from weight tables.
func NewSkillMatcher(w config.Weights) SkillMatcher {
	return SkillMatcher{w: w}
}

// Match produces the skills dimension detail. A job with no skill
// lists yields a zero score; a worker with no skills still gets every
// job skill assessed (all MISSING) so the gaps are reported.
func (m SkillMatcher) Match(worker domain.WorkerProfile, job domain.JobProfile) domain.SkillsDetail {
	detail := domain.SkillsDetail{
		ProficiencyMultiplier: m.w.DefaultProficiencyMultiplier,
		ExperienceMultiplier:  m.w.ExperienceMultiplierMin,
	}
	if len(job.RequiredSkills)+len(job.PreferredSkills) == 0 {
		return detail
	}

	required := m.assess(worker.Skills, job.RequiredSkills, true)
	preferred := m.assess(worker.Skills, job.PreferredSkills, false)
	detail.Assessments = append(required, preferred...)

	detail.RequiredRatio = meanSimilarity(required)
	detail.PreferredRatio = meanSimilarity(preferred)
	blended := m.w.RequiredSkillWeight*detail.RequiredRatio + m.w.PreferredSkillWeight*detail.PreferredRatio

	detail.ProficiencyMultiplier = m.proficiencyMultiplier(detail.Assessments)
	detail.ExperienceMultiplier = m.experienceMultiplier(detail.Assessments)

	detail.Score = math.Min(blended*detail.ProficiencyMultiplier*detail.ExperienceMultiplier*100, m.w.SkillsMax)
	return detail
}

// assess pairs each job skill with the worker skill of maximum
// similarity. A best match is recorded regardless of score; a
// similarity of zero simply contributes nothing.
func (m SkillMatcher) assess(skills []domain.Skill, reqs []domain.SkillRequirement, required bool) []domain.SkillAssessment {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]domain.SkillAssessment, 0, len(reqs))
	for _, req := range reqs {
		best := domain.SkillAssessment{Name: req.Name, Required: required}
		first := true
		for _, sk := range skills {
			sim := textx.Similarity(req.Name, sk.Name)
			if first || sim > best.Similarity {
				first = false
				best.BestMatch = sk.Name
				best.Similarity = sim
				best.Proficiency = sk.Proficiency
				best.Years = sk.YearsOfExperience
			}
		}
		best.Level = domain.LevelForSimilarity(best.Similarity)
		out = append(out, best)
	}
	return out
}

// proficiencyMultiplier averages the proficiency multipliers over all
// job skills; skills below the match threshold contribute the default.
func (m SkillMatcher) proficiencyMultiplier(assessments []domain.SkillAssessment) float64 {
	if len(assessments) == 0 {
		return m.w.DefaultProficiencyMultiplier
	}
	sum := 0.0
	for _, a := range assessments {
		mult := m.w.DefaultProficiencyMultiplier
		if a.Similarity >= m.w.SkillMatchThreshold {
			if v, ok := m.w.ProficiencyMultipliers[a.Proficiency]; ok {
				mult = v
			}
		}
		sum += mult
	}
	return sum / float64(len(assessments))
}

// experienceMultiplier maps mean years of experience on matched skills
// linearly from 0 years to the cap.
func (m SkillMatcher) experienceMultiplier(assessments []domain.SkillAssessment) float64 {
	matched := 0
	years := 0.0
	for _, a := range assessments {
		if a.Similarity >= m.w.SkillMatchThreshold {
			matched++
			years += a.Years
		}
	}
	mean := 0.0
	if matched > 0 {
		mean = years / float64(matched)
	}
	if mean > m.w.ExperienceMultiplierCapYears {
		mean = m.w.ExperienceMultiplierCapYears
	}
	span := m.w.ExperienceMultiplierMax - m.w.ExperienceMultiplierMin
	return m.w.ExperienceMultiplierMin + span*(mean/m.w.ExperienceMultiplierCapYears)
}

func meanSimilarity(assessments []domain.SkillAssessment) float64 {
	if len(assessments) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, a := range assessments {
		sum += a.Similarity
	}
	return sum / float64(len(assessments))
}
