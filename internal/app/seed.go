package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"catalyst-hr/internal/domain"
)

// seed populates an empty database with a few registered accounts and
// sample job postings so a fresh install has something to show.
// Idempotent: it bails out as soon as existing data is found.
func seed(ctx context.Context, logger *slog.Logger, users domain.UserRepository, jobs domain.JobRepository) error {
	existing, _, err := users.List(ctx, domain.PageRequest{MaxResults: 1})
	if err != nil {
		return fmt.Errorf("check users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("welcome1"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	seedUsers := []domain.User{
		{Email: "jordan.fields@example.com", DisplayName: "Jordan Fields", Role: domain.RoleCandidate},
		{Email: "sam.okafor@example.com", DisplayName: "Sam Okafor", Role: domain.RoleCandidate},
		{Email: "lee.tanaka@example.com", DisplayName: "Lee Tanaka", Role: domain.RoleUser},
	}
	for i := range seedUsers {
		seedUsers[i].PasswordHash = string(hash)
		if _, err := users.Create(ctx, &seedUsers[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", seedUsers[i].Email, err)
		}
	}

	seedJobs := []domain.Job{
		{
			Title: "Senior Backend Engineer", Company: "Catalyst Bank",
			Location: "Zurich", Department: "Engineering", Type: "full_time",
			Description: "Build and operate the core banking services platform.",
			Open:        true,
		},
		{
			Title: "Talent Acquisition Partner", Company: "Catalyst Bank",
			Location: "Remote", Department: "Talent", Type: "full_time",
			Description: "Own full-cycle recruiting for the engineering organisation.",
			Open:        true,
		},
		{
			Title: "Branch Customer Advisor", Company: "Catalyst Bank",
			Location: "Geneva", Department: "Retail", Type: "part_time",
			Description: "Front-line advisory for retail banking customers.",
			Open:        true,
		},
		{
			Title: "Data Analyst Intern", Company: "Catalyst Bank",
			Location: "Zurich", Department: "Analytics", Type: "internship",
			Description: "Support the analytics team with reporting and dashboards.",
			Open:        true,
		},
	}
	for i := range seedJobs {
		if _, err := jobs.Create(ctx, &seedJobs[i]); err != nil {
			return fmt.Errorf("seed job %q: %w", seedJobs[i].Title, err)
		}
	}

	logger.Info("seeded demo data", "users", len(seedUsers), "jobs", len(seedJobs))
	return nil
}
