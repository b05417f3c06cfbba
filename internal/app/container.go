package app

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"resumeforge/internal/ai/gemini"
	"resumeforge/internal/config"
	"resumeforge/internal/infrastructure/dynamo"
	"resumeforge/internal/infrastructure/storage"
	"resumeforge/internal/snapshot"
	"resumeforge/internal/usecase"
)

// Container wires infrastructure and usecases together.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB        *dynamo.Client
	Snapshots *snapshot.Store
	Storage   *storage.Gateway

	Users     *usecase.UserUsecase
	Jobs      *usecase.JobUsecase
	Resumes   *usecase.ResumeUsecase
	Analyses  *usecase.AnalysisUsecase
	Dashboard *usecase.DashboardUsecase
	Analyzer  *usecase.Analyzer
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	db := dynamo.NewClient(dynamodb.NewFromConfig(awsCfg), dynamo.TablesFromPrefix(cfg.AWS.TablePrefix))
	if err := db.Ping(ctx); err != nil {
		// The health endpoint reports the outage; analysis endpoints stay up.
		logger.Warn("dynamodb unreachable at startup", zap.Error(err))
	}

	snapshots, err := snapshot.NewStore(cfg.Snapshot.Dir)
	if err != nil {
		return nil, err
	}

	gateway := storage.NewGateway(ctx, s3.NewFromConfig(awsCfg), cfg.AWS.ResumeBucket, logger)

	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		return nil, err
	}
	analyzer := usecase.NewAnalyzer(gemini.NewExtractor(geminiClient), snapshots, logger)

	users := dynamo.NewUserRepository(db)
	jobs := dynamo.NewJobRepository(db)
	baseResumes := dynamo.NewBaseResumeRepository(db)
	generatedResumes := dynamo.NewGeneratedResumeRepository(db)
	analyses := dynamo.NewAnalysisRepository(db)
	trackingEvents := dynamo.NewTrackingRepository(db)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Snapshots: snapshots,
		Storage:   gateway,
		Users:     usecase.NewUserUsecase(users, logger),
		Jobs:      usecase.NewJobUsecase(jobs, trackingEvents, analyzer, logger),
		Resumes:   usecase.NewResumeUsecase(baseResumes, generatedResumes, users, gateway, analyzer, logger),
		Analyses:  usecase.NewAnalysisUsecase(analyses, jobs, baseResumes, logger),
		Dashboard: usecase.NewDashboardUsecase(jobs, baseResumes, generatedResumes, analyses, logger),
		Analyzer:  analyzer,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	return nil
}
