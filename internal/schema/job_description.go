package schema

// JobDescription is the data contract the extraction step must attempt to
// populate from raw job-posting text. Every field except JobTitle may stay
// empty; JobTitle is guaranteed non-empty by the fallback heuristic.
type JobDescription struct {
	// Basic job information
	JobTitle    string `json:"job_title" dynamodbav:"job_title"`
	CompanyName string `json:"company_name,omitempty" dynamodbav:"company_name,omitempty"`
	JobID       string `json:"job_id,omitempty" dynamodbav:"job_id,omitempty"`

	// Job details
	EmploymentType  string `json:"employment_type,omitempty" dynamodbav:"employment_type,omitempty"`
	WorkLocation    string `json:"work_location,omitempty" dynamodbav:"work_location,omitempty"`
	LocationDetails string `json:"location_details,omitempty" dynamodbav:"location_details,omitempty"`
	Department      string `json:"department,omitempty" dynamodbav:"department,omitempty"`

	// Compensation and benefits
	SalaryRange string   `json:"salary_range,omitempty" dynamodbav:"salary_range,omitempty"`
	Benefits    []string `json:"benefits,omitempty" dynamodbav:"benefits,omitempty"`

	// Job content
	JobSummary          string   `json:"job_summary,omitempty" dynamodbav:"job_summary,omitempty"`
	KeyResponsibilities []string `json:"key_responsibilities,omitempty" dynamodbav:"key_responsibilities,omitempty"`

	// Requirements
	RequiredEducation  string   `json:"required_education,omitempty" dynamodbav:"required_education,omitempty"`
	RequiredExperience string   `json:"required_experience,omitempty" dynamodbav:"required_experience,omitempty"`
	RequiredSkills     []string `json:"required_skills,omitempty" dynamodbav:"required_skills,omitempty"`

	// Preferences
	PreferredEducation  string   `json:"preferred_education,omitempty" dynamodbav:"preferred_education,omitempty"`
	PreferredExperience string   `json:"preferred_experience,omitempty" dynamodbav:"preferred_experience,omitempty"`
	PreferredSkills     []string `json:"preferred_skills,omitempty" dynamodbav:"preferred_skills,omitempty"`

	// Industry and culture
	Industry       string `json:"industry,omitempty" dynamodbav:"industry,omitempty"`
	CompanyCulture string `json:"company_culture,omitempty" dynamodbav:"company_culture,omitempty"`

	// Application details
	ApplicationDeadline string `json:"application_deadline,omitempty" dynamodbav:"application_deadline,omitempty"`
	PostingDate         string `json:"posting_date,omitempty" dynamodbav:"posting_date,omitempty"`

	// Technical details
	ToolsTechnologies []string `json:"tools_technologies,omitempty" dynamodbav:"tools_technologies,omitempty"`
	Certifications    []string `json:"certifications,omitempty" dynamodbav:"certifications,omitempty"`

	// Additional info
	TravelRequirements   string `json:"travel_requirements,omitempty" dynamodbav:"travel_requirements,omitempty"`
	PhysicalRequirements string `json:"physical_requirements,omitempty" dynamodbav:"physical_requirements,omitempty"`
	AdditionalNotes      string `json:"additional_notes,omitempty" dynamodbav:"additional_notes,omitempty"`
}

// Keywords merges the skill and tooling lists into the flat keyword set the
// job records store for search.
func (jd *JobDescription) Keywords() []string {
	if jd == nil {
		return nil
	}
	keywords := make([]string, 0, len(jd.RequiredSkills)+len(jd.PreferredSkills)+len(jd.ToolsTechnologies))
	keywords = append(keywords, jd.RequiredSkills...)
	keywords = append(keywords, jd.PreferredSkills...)
	keywords = append(keywords, jd.ToolsTechnologies...)
	return keywords
}
