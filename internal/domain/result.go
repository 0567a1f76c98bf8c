package domain

import (
	"time"
)

// MatchLevel is a discrete label attached to an individual skill or
// role comparison.
type MatchLevel string

const (
	MatchExcellent MatchLevel = "EXCELLENT"
	MatchGood      MatchLevel = "GOOD"
	MatchFair      MatchLevel = "FAIR"
	MatchPoor      MatchLevel = "POOR"
	MatchMissing   MatchLevel = "MISSING"
)

// LevelForSimilarity maps a similarity in [0,1] to its match level.
func LevelForSimilarity(sim float64) MatchLevel {
	switch {
	case sim >= 0.9:
		return MatchExcellent
	case sim >= 0.7:
		return MatchGood
	case sim >= 0.5:
		return MatchFair
	case sim >= 0.3:
		return MatchPoor
	default:
		return MatchMissing
	}
}

// Recommendation is the discrete outcome tier derived from the overall
// score.
type Recommendation string

const (
	StronglyRecommend Recommendation = "STRONGLY_RECOMMEND"
	Recommend         Recommendation = "RECOMMEND"
	Consider          Recommendation = "CONSIDER"
	NotRecommend      Recommendation = "NOT_RECOMMEND"
	Reject            Recommendation = "REJECT"
)

// EducationTier orders attainable education levels on an ordinal scale.
type EducationTier int

const (
	TierOther      EducationTier = 0
	TierHighSchool EducationTier = 1
	TierAssociate  EducationTier = 2
	TierBachelor   EducationTier = 3
	TierMaster     EducationTier = 4
	TierPhD        EducationTier = 5
)

// String returns the wire label for the tier.
func (t EducationTier) String() string {
	switch t {
	case TierHighSchool:
		return "HIGH_SCHOOL"
	case TierAssociate:
		return "ASSOCIATE"
	case TierBachelor:
		return "BACHELOR"
	case TierMaster:
		return "MASTER"
	case TierPhD:
		return "PHD"
	default:
		return "OTHER"
	}
}

// SkillAssessment reports how one job skill matched against the
// worker's skill set.
type SkillAssessment struct {
	Name        string
	Required    bool
	BestMatch   string
	Similarity  float64
	Proficiency Proficiency
	Years       float64
	Level       MatchLevel
}

// SkillsDetail is the skill dimension breakdown.
type SkillsDetail struct {
	Score                 float64
	RequiredRatio         float64
	PreferredRatio        float64
	ProficiencyMultiplier float64
	ExperienceMultiplier  float64
	Assessments           []SkillAssessment
}

// RoleAssessment reports one past role's contribution to the
// experience dimension.
type RoleAssessment struct {
	Title     string
	Company   string
	Years     float64
	Relevance float64
	Level     MatchLevel
}

// ExperienceDetail is the experience dimension breakdown.
type ExperienceDetail struct {
	Score          float64
	TotalYears     float64
	RequiredYears  float64
	YearsScore     float64
	RelevanceScore float64
	Roles          []RoleAssessment
}

// LocationDetail is the location/remote dimension breakdown.
// The proximity heuristic assumes "City, State, Country" location
// strings; free-text that violates the format degrades to the floor.
type LocationDetail struct {
	Score               float64
	RemoteCompatibility float64
	Proximity           float64
	FullyCompatible     bool
}

// AvailabilityDetail is the availability dimension breakdown.
type AvailabilityDetail struct {
	Score         float64
	StatusScore   float64
	NoticeScore   float64
	ScheduleScore float64
}

// EducationDetail is the education dimension breakdown.
type EducationDetail struct {
	Score        float64
	RequiredTier EducationTier
	WorkerTier   EducationTier
	TierRequired bool
}

// CulturalDetail is the cultural-fit dimension breakdown.
type CulturalDetail struct {
	Score           float64
	Fit             float64
	SizeMatch       bool
	IndustryMatch   bool
	WorkStyleMatch  bool
	ValuesOverlap   float64
	GrowthAlignment float64
}

// MatchResult is the immutable outcome of scoring one worker against
// one job. Invariants: every dimension score is clamped to its
// configured maximum; Overall is the arithmetic sum of the six
// dimension scores; Confidence is in [0,1].
type MatchResult struct {
	ID           string
	WorkerID     string
	JobID        string
	Skills       SkillsDetail
	Experience   ExperienceDetail
	Location     LocationDetail
	Availability AvailabilityDetail
	Education    EducationDetail
	Cultural     CulturalDetail

	Overall        float64
	Recommendation Recommendation
	Confidence     float64
	Strengths      []string
	AreasToImprove []string
	CreatedAt      time.Time
}

// SubScores returns the six dimension scores keyed by dimension name,
// in a fixed order suitable for deterministic iteration.
func (r MatchResult) SubScores() []DimensionScore {
	return []DimensionScore{
		{Dimension: DimensionSkills, Score: r.Skills.Score},
		{Dimension: DimensionExperience, Score: r.Experience.Score},
		{Dimension: DimensionLocation, Score: r.Location.Score},
		{Dimension: DimensionAvailability, Score: r.Availability.Score},
		{Dimension: DimensionEducation, Score: r.Education.Score},
		{Dimension: DimensionCultural, Score: r.Cultural.Score},
	}
}

// DimensionScore pairs a dimension name with its bounded score.
type DimensionScore struct {
	Dimension string
	Score     float64
}

// Dimension names used in results, metrics, and explanations.
const (
	DimensionSkills       = "skills"
	DimensionExperience   = "experience"
	DimensionLocation     = "location"
	DimensionAvailability = "availability"
	DimensionEducation    = "education"
	DimensionCultural     = "cultural"
)
