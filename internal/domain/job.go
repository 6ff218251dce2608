package domain

import "time"

// Job is a published job posting.
type Job struct {
	ID          int64
	Title       string
	Company     string
	Location    string
	Department  string
	Type        string // "full_time", "part_time", "contract", "internship"
	Description string
	SalaryMin   *int64
	SalaryMax   *int64
	PostedAt    time.Time
	Open        bool
}

var jobTypes = map[string]bool{
	"full_time":  true,
	"part_time":  true,
	"contract":   true,
	"internship": true,
}

// CreateJobRequest holds parameters for publishing a job posting.
type CreateJobRequest struct {
	Title       string
	Company     string
	Location    string
	Department  string
	Type        string
	Description string
	SalaryMin   *int64
	SalaryMax   *int64
}

// Validate checks that the request is well-formed.
func (r *CreateJobRequest) Validate() error {
	if r.Title == "" {
		return ErrValidation("job title is required")
	}
	if r.Company == "" {
		return ErrValidation("company is required")
	}
	if r.Type == "" {
		r.Type = "full_time"
	}
	if !jobTypes[r.Type] {
		return ErrValidation("type must be one of full_time, part_time, contract, internship")
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMin > *r.SalaryMax {
		return ErrValidation("salary_min may not exceed salary_max")
	}
	return nil
}

// JobFilter narrows job searches. Zero-valued fields match everything.
type JobFilter struct {
	Query      string // matched against title and company
	Location   string
	Department string
	Type       string
	OpenOnly   bool
}
