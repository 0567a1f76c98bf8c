package usecase

import (
	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
)

// WorkerFieldCheck names one worker field of the completeness
// checklist and the predicate that decides whether it is filled.
type WorkerFieldCheck struct {
	Name   string
	Filled func(domain.WorkerProfile) bool
}

// JobFieldCheck is the job-side counterpart of WorkerFieldCheck.
type JobFieldCheck struct {
	Name   string
	Filled func(domain.JobProfile) bool
}

// CompletenessSchema is the versioned field checklist behind the
// confidence computation. The field lists are deliberately explicit so
// tests can assert on them.
type CompletenessSchema struct {
	Version      string
	WorkerFields []WorkerFieldCheck
	JobFields    []JobFieldCheck
}

// CompletenessSchemaV1 is the current checklist.
var CompletenessSchemaV1 = CompletenessSchema{
	Version: "v1",
	WorkerFields: []WorkerFieldCheck{
		{Name: "summary", Filled: func(w domain.WorkerProfile) bool { return w.Summary != "" }},
		{Name: "location", Filled: func(w domain.WorkerProfile) bool { return w.Location != "" }},
		{Name: "remote_preference", Filled: func(w domain.WorkerProfile) bool { return w.RemotePreference != "" }},
		{Name: "availability", Filled: func(w domain.WorkerProfile) bool { return w.Availability != "" }},
		{Name: "skills", Filled: func(w domain.WorkerProfile) bool { return len(w.Skills) > 0 }},
		{Name: "experience", Filled: func(w domain.WorkerProfile) bool { return len(w.Experience) > 0 }},
		{Name: "education", Filled: func(w domain.WorkerProfile) bool { return len(w.Education) > 0 }},
	},
	JobFields: []JobFieldCheck{
		{Name: "description", Filled: func(j domain.JobProfile) bool { return j.Description != "" }},
		{Name: "requirements", Filled: func(j domain.JobProfile) bool { return j.Requirements != "" }},
		{Name: "location", Filled: func(j domain.JobProfile) bool { return j.Location != "" }},
		{Name: "remote_preference", Filled: func(j domain.JobProfile) bool { return j.RemotePreference != "" }},
		{Name: "employment_type", Filled: func(j domain.JobProfile) bool { return j.EmploymentType != "" }},
		{Name: "experience_level", Filled: func(j domain.JobProfile) bool { return j.ExperienceLevel != "" }},
		{Name: "required_skills", Filled: func(j domain.JobProfile) bool { return len(j.RequiredSkills) > 0 }},
		{Name: "industry", Filled: func(j domain.JobProfile) bool { return j.Industry != "" }},
	},
}

// WorkerCompleteness returns the filled-field ratio in [0,1].
func (s CompletenessSchema) WorkerCompleteness(w domain.WorkerProfile) float64 {
	if len(s.WorkerFields) == 0 {
		return 0
	}
	filled := 0
	for _, f := range s.WorkerFields {
		if f.Filled(w) {
			filled++
		}
	}
	return float64(filled) / float64(len(s.WorkerFields))
}

// JobCompleteness returns the filled-field ratio in [0,1].
func (s CompletenessSchema) JobCompleteness(j domain.JobProfile) float64 {
	if len(s.JobFields) == 0 {
		return 0
	}
	filled := 0
	for _, f := range s.JobFields {
		if f.Filled(j) {
			filled++
		}
	}
	return float64(filled) / float64(len(s.JobFields))
}
