package usecase

import (
	"context"

	"go.uber.org/zap"

	"resumeforge/internal/ai"
	"resumeforge/internal/schema"
	"resumeforge/internal/snapshot"
)

// Analyzer wraps the extraction backend with the degradation policy shared
// by every caller: a failed model call yields a sentinel-filled record, and
// successful analyses are snapshotted to disk as a side effect. It never
// returns an error.
type Analyzer struct {
	extractor ai.Extractor
	snapshots *snapshot.Store
	logger    *zap.Logger
}

func NewAnalyzer(extractor ai.Extractor, snapshots *snapshot.Store, logger *zap.Logger) *Analyzer {
	return &Analyzer{extractor: extractor, snapshots: snapshots, logger: logger}
}

// AnalyzeJDStrict extracts a structured job description and surfaces the
// extraction error to the caller.
func (a *Analyzer) AnalyzeJDStrict(ctx context.Context, jdText string) (*schema.JobDescription, error) {
	jd, err := a.extractor.AnalyzeJobDescription(ctx, jdText)
	if err != nil {
		return nil, err
	}

	if a.snapshots != nil {
		if name, err := a.snapshots.SaveJD(jdText, jd); err != nil {
			a.logger.Warn("failed to snapshot jd analysis", zap.Error(err))
		} else {
			a.logger.Debug("jd analysis snapshotted", zap.String("file", name))
		}
	}
	return jd, nil
}

// AnalyzeJD extracts a structured job description, falling back to a
// heuristic record on failure.
func (a *Analyzer) AnalyzeJD(ctx context.Context, jdText string) *schema.JobDescription {
	jd, err := a.AnalyzeJDStrict(ctx, jdText)
	if err != nil {
		a.logger.Warn("job description analysis failed, using fallback", zap.Error(err))
		return schema.FallbackJobDescription(jdText)
	}
	return jd
}

// AnalyzeResume extracts a structured candidate profile, falling back to a
// sentinel-filled record on failure.
func (a *Analyzer) AnalyzeResume(ctx context.Context, resumeText string) *schema.ResumeData {
	rd, err := a.extractor.AnalyzeResume(ctx, resumeText)
	if err != nil {
		a.logger.Warn("resume analysis failed, using fallback", zap.Error(err))
		return schema.FallbackResumeData(resumeText)
	}

	if a.snapshots != nil {
		if name, err := a.snapshots.SaveResume(resumeText, rd); err != nil {
			a.logger.Warn("failed to snapshot resume analysis", zap.Error(err))
		} else {
			a.logger.Debug("resume analysis snapshotted", zap.String("file", name))
		}
	}
	return rd
}
