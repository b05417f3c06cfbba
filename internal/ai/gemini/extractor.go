package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"resumeforge/internal/schema"
)

// Extractor implements ai.Extractor against the Gemini API using
// schema-constrained JSON generation.
type Extractor struct {
	client *Client
}

func NewExtractor(client *Client) *Extractor {
	return &Extractor{client: client}
}

func (e *Extractor) AnalyzeJobDescription(ctx context.Context, jdText string) (*schema.JobDescription, error) {
	prompt := "Analyze this job description and extract structured information:\n\n" + jdText

	text, err := e.client.generateJSON(ctx, jdSystemInstruction, prompt, jobDescriptionSchema())
	if err != nil {
		return nil, err
	}

	var jd schema.JobDescription
	if err := json.Unmarshal([]byte(text), &jd); err != nil {
		return nil, fmt.Errorf("gemini: decode job description: %w", err)
	}
	if jd.JobTitle == "" {
		jd.JobTitle = schema.TitleNotFound
	}
	return &jd, nil
}

func (e *Extractor) AnalyzeResume(ctx context.Context, resumeText string) (*schema.ResumeData, error) {
	prompt := "Analyze this resume and extract the candidate profile:\n\n" + resumeText

	text, err := e.client.generateJSON(ctx, resumeSystemInstruction, prompt, resumeDataSchema())
	if err != nil {
		return nil, err
	}

	var rd schema.ResumeData
	if err := json.Unmarshal([]byte(text), &rd); err != nil {
		return nil, fmt.Errorf("gemini: decode resume data: %w", err)
	}
	if rd.FullName == "" {
		rd.FullName = schema.NameNotFound
	}
	if rd.Email == "" {
		rd.Email = schema.EmailNotFound
	}
	if rd.Phone == "" {
		rd.Phone = schema.PhoneNotFound
	}
	rd.RawText = resumeText
	return &rd, nil
}

func str() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func strList() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: str()}
}

func jobDescriptionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"job_title":             str(),
			"company_name":          str(),
			"job_id":                str(),
			"employment_type":       str(),
			"work_location":         str(),
			"location_details":      str(),
			"department":            str(),
			"salary_range":          str(),
			"benefits":              strList(),
			"job_summary":           str(),
			"key_responsibilities":  strList(),
			"required_education":    str(),
			"required_experience":   str(),
			"required_skills":       strList(),
			"preferred_education":   str(),
			"preferred_experience":  str(),
			"preferred_skills":      strList(),
			"industry":              str(),
			"company_culture":       str(),
			"application_deadline":  str(),
			"posting_date":          str(),
			"tools_technologies":    strList(),
			"certifications":        strList(),
			"travel_requirements":   str(),
			"physical_requirements": str(),
			"additional_notes":      str(),
		},
		Required: []string{"job_title"},
	}
}

func resumeDataSchema() *genai.Schema {
	workExperience := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"company_name":      str(),
			"position":          str(),
			"start_date":        str(),
			"end_date":          str(),
			"location":          str(),
			"description":       str(),
			"achievements":      str(),
			"technologies":      str(),
			"methodologies":     str(),
			"business_impact":   str(),
			"team_size":         {Type: genai.TypeInteger},
			"client_management": str(),
		},
		Required: []string{"company_name", "position"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"full_name":                 str(),
			"email":                     str(),
			"phone":                     str(),
			"linkedin":                  str(),
			"github":                    str(),
			"portfolio":                 str(),
			"location":                  str(),
			"professional_summary":      str(),
			"technical_skills_detailed": str(),
			"education_detailed":        str(),
			"projects_detailed":         str(),
			"quantified_achievements":   str(),
			"professional_context":      str(),
			"career_summary":            str(),
			"additional_info":           str(),
			"work_experience_detailed": {
				Type:  genai.TypeArray,
				Items: workExperience,
			},
		},
		Required: []string{"full_name", "email", "phone"},
	}
}
