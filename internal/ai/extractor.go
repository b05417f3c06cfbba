// Package ai defines the contract for turning raw document text into
// structured records. Implementations live in subpackages.
package ai

import (
	"context"

	"resumeforge/internal/schema"
)

// Extractor converts free-form text into typed analysis records.
type Extractor interface {
	AnalyzeJobDescription(ctx context.Context, jdText string) (*schema.JobDescription, error)
	AnalyzeResume(ctx context.Context, resumeText string) (*schema.ResumeData, error)
}
