package schema

// WorkExperience is one role in a candidate's history.
type WorkExperience struct {
	CompanyName      string `json:"company_name" dynamodbav:"company_name"`
	Position         string `json:"position" dynamodbav:"position"`
	StartDate        string `json:"start_date" dynamodbav:"start_date"`
	EndDate          string `json:"end_date" dynamodbav:"end_date"`
	Location         string `json:"location" dynamodbav:"location"`
	Description      string `json:"description" dynamodbav:"description"`
	Achievements     string `json:"achievements" dynamodbav:"achievements"`
	Technologies     string `json:"technologies" dynamodbav:"technologies"`
	Methodologies    string `json:"methodologies" dynamodbav:"methodologies"`
	BusinessImpact   string `json:"business_impact" dynamodbav:"business_impact"`
	TeamSize         int    `json:"team_size" dynamodbav:"team_size"`
	ClientManagement string `json:"client_management" dynamodbav:"client_management"`
}

// ResumeData is the extraction contract for uploaded resumes. The three
// contact fields are required: consumers rely on them being non-empty, so
// extraction failure substitutes sentinel strings instead of leaving gaps.
type ResumeData struct {
	// Contact information (required)
	FullName string `json:"full_name" dynamodbav:"full_name"`
	Email    string `json:"email" dynamodbav:"email"`
	Phone    string `json:"phone" dynamodbav:"phone"`

	// Contact information (optional)
	LinkedIn  string `json:"linkedin,omitempty" dynamodbav:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty" dynamodbav:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty" dynamodbav:"portfolio,omitempty"`
	Location  string `json:"location,omitempty" dynamodbav:"location,omitempty"`

	ProfessionalSummary string `json:"professional_summary" dynamodbav:"professional_summary"`

	// Every skill mentioned anywhere in the resume, categorized.
	TechnicalSkillsDetailed string `json:"technical_skills_detailed" dynamodbav:"technical_skills_detailed"`

	WorkExperienceDetailed []WorkExperience `json:"work_experience_detailed" dynamodbav:"work_experience_detailed"`

	EducationDetailed      string `json:"education_detailed" dynamodbav:"education_detailed"`
	ProjectsDetailed       string `json:"projects_detailed" dynamodbav:"projects_detailed"`
	QuantifiedAchievements string `json:"quantified_achievements" dynamodbav:"quantified_achievements"`
	ProfessionalContext    string `json:"professional_context" dynamodbav:"professional_context"`
	CareerSummary          string `json:"career_summary" dynamodbav:"career_summary"`

	AdditionalInfo string `json:"additional_info,omitempty" dynamodbav:"additional_info,omitempty"`

	// Original text kept for reference by downstream rewriting.
	RawText string `json:"raw_text,omitempty" dynamodbav:"raw_text,omitempty"`
}
