package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
)

// Weights collects every hand-tuned constant of the scoring engine as a
// named, overridable table. The default values were tuned by hand in
// the original system; treat them as tunable parameters, not derived
// quantities. Global weighting is baked into each dimension's cap (the
// caps sum to 100), so the overall score is a plain sum.
type Weights struct {
	// Dimension caps.
	SkillsMax       float64 `yaml:"skills_max"`
	ExperienceMax   float64 `yaml:"experience_max"`
	LocationMax     float64 `yaml:"location_max"`
	AvailabilityMax float64 `yaml:"availability_max"`
	EducationMax    float64 `yaml:"education_max"`
	CulturalMax     float64 `yaml:"cultural_max"`

	// Skill matching.
	RequiredSkillWeight          float64                        `yaml:"required_skill_weight"`
	PreferredSkillWeight         float64                        `yaml:"preferred_skill_weight"`
	SkillMatchThreshold          float64                        `yaml:"skill_match_threshold"`
	ProficiencyMultipliers       map[domain.Proficiency]float64 `yaml:"proficiency_multipliers"`
	DefaultProficiencyMultiplier float64                        `yaml:"default_proficiency_multiplier"`
	ExperienceMultiplierMin      float64                        `yaml:"experience_multiplier_min"`
	ExperienceMultiplierMax      float64                        `yaml:"experience_multiplier_max"`
	ExperienceMultiplierCapYears float64                        `yaml:"experience_multiplier_cap_years"`

	// Experience matching.
	RequiredYearsByLevel     map[domain.ExperienceLevel]float64 `yaml:"required_years_by_level"`
	DefaultRequiredYears     float64                            `yaml:"default_required_years"`
	YearsWeight              float64                            `yaml:"years_weight"`
	RelevanceWeight          float64                            `yaml:"relevance_weight"`
	TitleSimilarityWeight    float64                            `yaml:"title_similarity_weight"`
	IndustryKeywordWeight    float64                            `yaml:"industry_keyword_weight"`
	DescriptionOverlapWeight float64                            `yaml:"description_overlap_weight"`

	// Location matching. The proximity ladder assumes "City, State,
	// Country" location strings.
	RemoteCompatibility map[domain.RemotePreference]map[domain.RemotePreference]float64 `yaml:"remote_compatibility"`
	DefaultRemoteCompat float64                                                         `yaml:"default_remote_compat"`
	ProximityExact      float64                                                         `yaml:"proximity_exact"`
	ProximityCity       float64                                                         `yaml:"proximity_city"`
	ProximityState      float64                                                         `yaml:"proximity_state"`
	ProximityCountry    float64                                                         `yaml:"proximity_country"`
	ProximityRemoteHint float64                                                         `yaml:"proximity_remote_hint"`
	ProximityFloor      float64                                                         `yaml:"proximity_floor"`
	ProximityUnknown    float64                                                         `yaml:"proximity_unknown"`

	// Availability matching.
	AvailabilityStatusScores map[domain.AvailabilityStatus]float64 `yaml:"availability_status_scores"`
	DefaultStatusScore       float64                               `yaml:"default_status_score"`
	NoticeTiers              []NoticeTier                          `yaml:"notice_tiers"`
	NoticeFloor              float64                               `yaml:"notice_floor"`
	StatusWeight             float64                               `yaml:"status_weight"`
	NoticeWeight             float64                               `yaml:"notice_weight"`
	ScheduleWeight           float64                               `yaml:"schedule_weight"`
	FullTimeJobPartTimeFit   float64                               `yaml:"full_time_job_part_time_fit"`
	PartTimeJobFullTimeFit   float64                               `yaml:"part_time_job_full_time_fit"`

	// Education matching.
	EducationKeywords     []EducationKeywords `yaml:"education_keywords"`
	EducationDefaultRatio float64             `yaml:"education_default_ratio"`

	// Cultural fit.
	CulturalBase      float64  `yaml:"cultural_base"`
	CulturalIncrement float64  `yaml:"cultural_increment"`
	ValuesVocabulary  []string `yaml:"values_vocabulary"`
	GrowthKeywords    []string `yaml:"growth_keywords"`

	// Aggregation.
	StrongThreshold        float64 `yaml:"strong_threshold"`
	RecommendThreshold     float64 `yaml:"recommend_threshold"`
	ConsiderThreshold      float64 `yaml:"consider_threshold"`
	NotRecommendThreshold  float64 `yaml:"not_recommend_threshold"`
	ConfidenceBase         float64 `yaml:"confidence_base"`
	ConfidenceWorkerWeight float64 `yaml:"confidence_worker_weight"`
	ConfidenceJobWeight    float64 `yaml:"confidence_job_weight"`
	StrengthRatio          float64 `yaml:"strength_ratio"`
	ImproveRatio           float64 `yaml:"improve_ratio"`
}

// NoticeTier maps a maximum notice period in days to its score. Tiers
// are evaluated in order; the first tier whose MaxDays covers the
// worker's notice period wins.
type NoticeTier struct {
	MaxDays int     `yaml:"max_days"`
	Score   float64 `yaml:"score"`
}

// EducationKeywords binds an education tier to the keyword family that
// detects it in free text. Families are scanned in order; the first hit
// wins. Phrases match as substrings, Tokens as whole tokens (so "ms"
// does not fire inside "systems").
type EducationKeywords struct {
	Tier    domain.EducationTier `yaml:"tier"`
	Phrases []string             `yaml:"phrases"`
	Tokens  []string             `yaml:"tokens"`
}

// DefaultWeights returns the hand-tuned scoring tables.
func DefaultWeights() Weights {
	return Weights{
		SkillsMax:       30,
		ExperienceMax:   25,
		LocationMax:     15,
		AvailabilityMax: 15,
		EducationMax:    10,
		CulturalMax:     5,

		RequiredSkillWeight:  0.7,
		PreferredSkillWeight: 0.3,
		SkillMatchThreshold:  0.7,
		ProficiencyMultipliers: map[domain.Proficiency]float64{
			domain.ProficiencyBeginner:     0.6,
			domain.ProficiencyIntermediate: 0.8,
			domain.ProficiencyAdvanced:     1.0,
			domain.ProficiencyExpert:       1.2,
		},
		DefaultProficiencyMultiplier: 0.7,
		ExperienceMultiplierMin:      0.7,
		ExperienceMultiplierMax:      1.2,
		ExperienceMultiplierCapYears: 10,

		RequiredYearsByLevel: map[domain.ExperienceLevel]float64{
			domain.LevelEntry:     0,
			domain.LevelJunior:    1,
			domain.LevelMid:       3,
			domain.LevelSenior:    5,
			domain.LevelLead:      8,
			domain.LevelExecutive: 10,
		},
		DefaultRequiredYears:     3,
		YearsWeight:              0.6,
		RelevanceWeight:          0.4,
		TitleSimilarityWeight:    0.4,
		IndustryKeywordWeight:    0.3,
		DescriptionOverlapWeight: 0.3,

		RemoteCompatibility: map[domain.RemotePreference]map[domain.RemotePreference]float64{
			domain.RemoteOnsite: {
				domain.RemoteOnsite: 1.0,
				domain.RemoteHybrid: 0.7,
				domain.RemoteFull:   0.3,
			},
			domain.RemoteHybrid: {
				domain.RemoteOnsite: 0.7,
				domain.RemoteHybrid: 1.0,
				domain.RemoteFull:   0.5,
			},
			domain.RemoteFull: {
				domain.RemoteOnsite: 0.0,
				domain.RemoteHybrid: 0.5,
				domain.RemoteFull:   1.0,
			},
		},
		DefaultRemoteCompat: 0.5,
		ProximityExact:      1.0,
		ProximityCity:       0.9,
		ProximityState:      0.7,
		ProximityCountry:    0.5,
		ProximityRemoteHint: 0.8,
		ProximityFloor:      0.3,
		ProximityUnknown:    0.5,

		AvailabilityStatusScores: map[domain.AvailabilityStatus]float64{
			domain.AvailabilityAvailable:   1.0,
			domain.AvailabilitySoon:        0.7,
			domain.AvailabilityUnavailable: 0.3,
		},
		DefaultStatusScore: 0.5,
		NoticeTiers: []NoticeTier{
			{MaxDays: 14, Score: 1.0},
			{MaxDays: 30, Score: 0.8},
			{MaxDays: 60, Score: 0.6},
		},
		NoticeFloor:            0.4,
		StatusWeight:           0.4,
		NoticeWeight:           0.3,
		ScheduleWeight:         0.3,
		FullTimeJobPartTimeFit: 0.5,
		PartTimeJobFullTimeFit: 0.7,

		EducationKeywords: []EducationKeywords{
			{Tier: domain.TierPhD, Phrases: []string{"phd", "ph.d", "doctorate", "doctoral"}},
			{Tier: domain.TierMaster, Phrases: []string{"master"}, Tokens: []string{"ms", "msc", "mba"}},
			{Tier: domain.TierBachelor, Phrases: []string{"bachelor"}, Tokens: []string{"bs", "bsc", "ba"}},
			{Tier: domain.TierAssociate, Phrases: []string{"associate", "diploma"}},
			{Tier: domain.TierHighSchool, Phrases: []string{"high school"}},
		},
		EducationDefaultRatio: 0.5,

		CulturalBase:      0.5,
		CulturalIncrement: 0.1,
		ValuesVocabulary: []string{
			"integrity", "innovation", "collaboration", "excellence",
			"diversity", "inclusion", "transparency", "accountability",
			"teamwork", "respect", "ownership", "empathy",
			"trust", "quality", "impact", "balance",
		},
		GrowthKeywords: []string{
			"growth", "learning", "development", "mentorship",
			"training", "career", "advancement", "opportunity",
		},

		StrongThreshold:        90,
		RecommendThreshold:     75,
		ConsiderThreshold:      60,
		NotRecommendThreshold:  40,
		ConfidenceBase:         0.5,
		ConfidenceWorkerWeight: 0.25,
		ConfidenceJobWeight:    0.25,
		StrengthRatio:          0.75,
		ImproveRatio:           0.5,
	}
}

// LoadWeights overlays a YAML weights file on the defaults. An empty
// path returns the defaults unchanged.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	if path == "" {
		return w, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("op=config.LoadWeights: %w", err)
	}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return Weights{}, fmt.Errorf("op=config.LoadWeights: %w: %v", domain.ErrInvalidArgument, err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

// Validate rejects weight tables that would break the scoring
// invariants.
func (w Weights) Validate() error {
	capSum := w.SkillsMax + w.ExperienceMax + w.LocationMax + w.AvailabilityMax + w.EducationMax + w.CulturalMax
	if math.Abs(capSum-100) > 1e-9 {
		return fmt.Errorf("op=Weights.Validate: %w: dimension caps sum to %.2f, want 100", domain.ErrInvalidArgument, capSum)
	}
	if !sumsToOne(w.RequiredSkillWeight, w.PreferredSkillWeight) {
		return fmt.Errorf("op=Weights.Validate: %w: skill weights must sum to 1", domain.ErrInvalidArgument)
	}
	if !sumsToOne(w.YearsWeight, w.RelevanceWeight) {
		return fmt.Errorf("op=Weights.Validate: %w: experience weights must sum to 1", domain.ErrInvalidArgument)
	}
	if !sumsToOne(w.TitleSimilarityWeight, w.IndustryKeywordWeight, w.DescriptionOverlapWeight) {
		return fmt.Errorf("op=Weights.Validate: %w: relevance weights must sum to 1", domain.ErrInvalidArgument)
	}
	if !sumsToOne(w.StatusWeight, w.NoticeWeight, w.ScheduleWeight) {
		return fmt.Errorf("op=Weights.Validate: %w: availability weights must sum to 1", domain.ErrInvalidArgument)
	}
	for _, p := range []domain.Proficiency{domain.ProficiencyBeginner, domain.ProficiencyIntermediate, domain.ProficiencyAdvanced, domain.ProficiencyExpert} {
		if _, ok := w.ProficiencyMultipliers[p]; !ok {
			return fmt.Errorf("op=Weights.Validate: %w: missing proficiency multiplier for %s", domain.ErrInvalidArgument, p)
		}
	}
	if !(w.StrongThreshold > w.RecommendThreshold && w.RecommendThreshold > w.ConsiderThreshold && w.ConsiderThreshold > w.NotRecommendThreshold) {
		return fmt.Errorf("op=Weights.Validate: %w: recommendation thresholds must strictly descend", domain.ErrInvalidArgument)
	}
	return nil
}

func sumsToOne(vals ...float64) bool {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return math.Abs(s-1) <= 1e-9
}
