package gamification

import "catalyst-hr/internal/domain"

// actionXP maps tracked actions to the XP they award.
var actionXP = map[string]int64{
	"login":             5,
	"register":          25,
	"view_job":          1,
	"search_jobs":       2,
	"submit_application": 50,
	"advance_candidate": 10,
	"create_job":        20,
}

// levelThresholds holds the cumulative XP required to reach each
// level, indexed from level 1.
var levelThresholds = []int64{0, 100, 300, 700, 1500, 3000}

var levelTitles = []string{
	"Newcomer",
	"Explorer",
	"Contributor",
	"Achiever",
	"Expert",
	"Legend",
}

type achievementRule struct {
	domain.Achievement
	action string
	count  int64
}

var achievementRules = []achievementRule{
	{domain.Achievement{Key: "first_steps", Title: "First Steps", Description: "Signed in for the first time"}, "login", 1},
	{domain.Achievement{Key: "regular", Title: "Regular", Description: "Signed in ten times"}, "login", 10},
	{domain.Achievement{Key: "job_hunter", Title: "Job Hunter", Description: "Viewed twenty-five job postings"}, "view_job", 25},
	{domain.Achievement{Key: "applicant", Title: "Applicant", Description: "Submitted a job application"}, "submit_application", 1},
	{domain.Achievement{Key: "go_getter", Title: "Go-Getter", Description: "Submitted five job applications"}, "submit_application", 5},
	{domain.Achievement{Key: "talent_scout", Title: "Talent Scout", Description: "Advanced ten candidates through the pipeline"}, "advance_candidate", 10},
}

// XPForAction returns the XP an action is worth, zero for untracked
// actions.
func XPForAction(action string) int64 {
	return actionXP[action]
}

func totalXP(counts map[string]int64) int64 {
	var xp int64
	for action, n := range counts {
		xp += actionXP[action] * n
	}
	return xp
}

func levelFor(xp int64) (level int, title string) {
	level = 1
	for i, threshold := range levelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level, levelTitles[level-1]
}

func earnedAchievements(counts map[string]int64) []domain.Achievement {
	var earned []domain.Achievement
	for _, rule := range achievementRules {
		if counts[rule.action] >= rule.count {
			earned = append(earned, rule.Achievement)
		}
	}
	return earned
}
