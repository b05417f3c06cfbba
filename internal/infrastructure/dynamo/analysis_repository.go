package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"resumeforge/internal/domain/analysis"
)

// AnalysisRepository implements analysis.Repository.
type AnalysisRepository struct {
	client *Client
}

func NewAnalysisRepository(client *Client) *AnalysisRepository {
	return &AnalysisRepository{client: client}
}

func (r *AnalysisRepository) Put(ctx context.Context, a *analysis.ResumeAnalysis) error {
	return r.client.putItem(ctx, r.client.tables.Analysis, a)
}

func (r *AnalysisRepository) Get(ctx context.Context, analysisID string) (*analysis.ResumeAnalysis, error) {
	var a analysis.ResumeAnalysis
	found, err := r.client.getItem(ctx, r.client.tables.Analysis, "analysis_id", analysisID, &a)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, analysis.ErrNotFound
	}
	return &a, nil
}

func (r *AnalysisRepository) ListByJob(ctx context.Context, jobID string) ([]analysis.ResumeAnalysis, error) {
	filter := expression.Name("job_id").Equal(expression.Value(jobID))

	var analyses []analysis.ResumeAnalysis
	if err := r.client.scan(ctx, r.client.tables.Analysis, filter, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}

func (r *AnalysisRepository) ListByUser(ctx context.Context, userID string) ([]analysis.ResumeAnalysis, error) {
	filter := expression.Name("user_id").Equal(expression.Value(userID))

	var analyses []analysis.ResumeAnalysis
	if err := r.client.scan(ctx, r.client.tables.Analysis, filter, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}
