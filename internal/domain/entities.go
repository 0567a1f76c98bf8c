// Package domain holds the core entities of the match scoring engine:
// worker and job profiles, the scoring result, and the error taxonomy.
package domain

import (
	"errors"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrInternal        = errors.New("internal error")
)

// RemotePreference enumerates work-location preferences for both
// workers and jobs.
type RemotePreference string

const (
	RemoteOnsite RemotePreference = "ONSITE"
	RemoteFull   RemotePreference = "REMOTE"
	RemoteHybrid RemotePreference = "HYBRID"
)

// AvailabilityStatus describes how soon a worker can start.
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "AVAILABLE"
	AvailabilitySoon        AvailabilityStatus = "SOON"
	AvailabilityUnavailable AvailabilityStatus = "UNAVAILABLE"
)

// Proficiency is a worker's self-reported level for a single skill.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "BEGINNER"
	ProficiencyIntermediate Proficiency = "INTERMEDIATE"
	ProficiencyAdvanced     Proficiency = "ADVANCED"
	ProficiencyExpert       Proficiency = "EXPERT"
)

// EmploymentType enumerates job engagement models.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentInternship EmploymentType = "INTERNSHIP"
)

// ExperienceLevel is the seniority tier a job posting targets.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "ENTRY"
	LevelJunior    ExperienceLevel = "JUNIOR"
	LevelMid       ExperienceLevel = "MID"
	LevelSenior    ExperienceLevel = "SENIOR"
	LevelLead      ExperienceLevel = "LEAD"
	LevelExecutive ExperienceLevel = "EXECUTIVE"
)

// CompanySize buckets an employer by headcount.
type CompanySize string

const (
	CompanyStartup    CompanySize = "STARTUP"
	CompanySmall      CompanySize = "SMALL"
	CompanyMedium     CompanySize = "MEDIUM"
	CompanyLarge      CompanySize = "LARGE"
	CompanyEnterprise CompanySize = "ENTERPRISE"
)

// Skill is a single named skill on a worker profile.
type Skill struct {
	Name              string
	Proficiency       Proficiency
	YearsOfExperience float64
}

// Experience is one past (or current) role on a worker profile.
// StartDate/EndDate accept "2006-01-02", "2006-01" or "2006"; entries
// with unparsable dates are excluded from duration calculations but
// still count toward relevance.
type Experience struct {
	Title       string
	Company     string
	Description string
	StartDate   string
	EndDate     string
	Current     bool
}

// Education is one attained degree on a worker profile. Only Degree is
// inspected by the engine; Institution and Field are carried for
// collaborators.
type Education struct {
	Degree      string
	Institution string
	Field       string
}

// WorkerProfile is the read-only candidate record the engine scores.
// Referential fields (skills, experience, education) are assumed
// already resolved by the repository collaborator.
type WorkerProfile struct {
	ID                    string `validate:"required"`
	FullName              string
	Summary               string
	Location              string
	RemotePreference      RemotePreference
	Availability          AvailabilityStatus
	NoticePeriodDays      int
	FullTime              bool
	Skills                []Skill
	Experience            []Experience
	Education             []Education
	PreferredCompanySizes []CompanySize
	PreferredIndustries   []string
}

// SkillRequirement is one required or preferred skill on a job posting.
type SkillRequirement struct {
	Name       string
	Importance float64
}

// JobProfile is the read-only job posting record the engine scores
// against.
type JobProfile struct {
	ID               string `validate:"required"`
	Title            string `validate:"required"`
	Description      string
	Requirements     string
	Location         string
	RemotePreference RemotePreference
	EmploymentType   EmploymentType
	ExperienceLevel  ExperienceLevel
	RequiredSkills   []SkillRequirement
	PreferredSkills  []SkillRequirement
	CompanySize      CompanySize
	Industry         string
}
