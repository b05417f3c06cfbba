package schema

import "strings"

// Sentinel values used when extraction fails. Required fields must never be
// empty, even when the model call goes completely sideways.
const (
	TitleNotFound   = "Job Title Not Found"
	NameNotFound    = "Name Not Found"
	EmailNotFound   = "Email Not Found"
	PhoneNotFound   = "Phone Not Found"
	AnalysisFailed  = "Analysis Failed"
	FailedJDSummary = "Failed to analyze - please retry or check extraction service configuration"
)

// FallbackJobDescription builds a degraded but well-typed record when the
// extraction agent fails: the title comes from a first-line heuristic and
// the summary carries a sentinel.
func FallbackJobDescription(jdText string) *JobDescription {
	return &JobDescription{
		JobTitle:   ExtractBasicTitle(jdText),
		JobSummary: FailedJDSummary,
	}
}

// ExtractBasicTitle recovers a job title from raw JD text by taking the
// first non-boilerplate line. Checks at most the first five lines.
func ExtractBasicTitle(jdText string) string {
	lines := strings.Split(strings.TrimSpace(jdText), "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "apply") ||
			strings.HasPrefix(lower, "remote") ||
			strings.HasPrefix(lower, "location") ||
			strings.HasPrefix(lower, "time") ||
			strings.HasPrefix(lower, "posted") {
			continue
		}
		return line
	}
	return TitleNotFound
}

// FallbackResumeData fills every required field with an explicit sentinel so
// downstream consumers never see a partially-typed record.
func FallbackResumeData(resumeText string) *ResumeData {
	return &ResumeData{
		FullName:                NameNotFound,
		Email:                   EmailNotFound,
		Phone:                   PhoneNotFound,
		ProfessionalSummary:     FailedJDSummary,
		TechnicalSkillsDetailed: AnalysisFailed,
		WorkExperienceDetailed:  []WorkExperience{},
		EducationDetailed:       AnalysisFailed,
		ProjectsDetailed:        AnalysisFailed,
		QuantifiedAchievements:  AnalysisFailed,
		ProfessionalContext:     AnalysisFailed,
		CareerSummary:           AnalysisFailed,
		RawText:                 resumeText,
	}
}
