package routes

import (
	"resumeforge/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	analyze  *handler.AnalyzeHandler
	users    *handler.UserHandler
	jobs     *handler.JobHandler
	resumes  *handler.ResumeHandler
	analyses *handler.AnalysisHandler
	jdFiles  *handler.JDFilesHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	analyze *handler.AnalyzeHandler,
	users *handler.UserHandler,
	jobs *handler.JobHandler,
	resumes *handler.ResumeHandler,
	analyses *handler.AnalysisHandler,
	jdFiles *handler.JDFilesHandler,
) *Registry {
	return &Registry{
		health:   health,
		analyze:  analyze,
		users:    users,
		jobs:     jobs,
		resumes:  resumes,
		analyses: analyses,
		jdFiles:  jdFiles,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/", r.health.HandleRoot)
	app.Get("/health", r.health.HandleHealth)

	api := app.Group("/api")

	api.Post("/analyze-jd", r.analyze.HandleAnalyzeJD)
	api.Post("/analyze-resume", r.analyze.HandleAnalyzeResume)

	api.Post("/users", r.users.HandleCreateUser)
	api.Get("/users/:user_id", r.users.HandleGetUser)
	api.Get("/users/:user_id/dashboard", r.users.HandleDashboard)
	api.Get("/users/:user_id/jobs", r.users.HandleListJobs)
	api.Get("/users/:user_id/resumes", r.users.HandleListResumes)
	api.Get("/users/:user_id/resumes/uploaded", r.users.HandleListUploadedResumes)
	api.Get("/users/:user_id/resumes/generated", r.users.HandleListGeneratedResumes)
	api.Post("/users/:user_id/resumes/upload", r.resumes.HandleUploadResume)

	api.Post("/jobs", r.jobs.HandleCreateJob)
	api.Post("/jobs/delete-multiple", r.jobs.HandleDeleteMultiple)
	api.Get("/jobs/:job_id", r.jobs.HandleGetJob)
	api.Delete("/jobs/:job_id", r.jobs.HandleDeleteJob)
	api.Post("/jobs/:job_id/restore", r.jobs.HandleRestoreJob)
	api.Put("/jobs/:job_id/status", r.jobs.HandleUpdateStatus)
	api.Get("/jobs/:job_id/history", r.jobs.HandleHistory)
	api.Get("/jobs/:job_id/analyses", r.analyses.HandleListByJob)

	api.Post("/resumes", r.resumes.HandleCreateResume)
	api.Get("/resumes/:resume_id", r.resumes.HandleGetResume)
	api.Get("/resumes/:resume_id/download", r.resumes.HandleDownload)
	api.Get("/resumes/:resume_id/preview", r.resumes.HandlePreview)
	api.Put("/resumes/:resume_id/primary", r.resumes.HandleSetPrimary)

	api.Post("/analysis", r.analyses.HandleCreateAnalysis)
	api.Get("/analysis/:analysis_id", r.analyses.HandleGetAnalysis)

	api.Get("/jd-files", r.jdFiles.HandleList)
	api.Get("/jd-files/:file_id", r.jdFiles.HandleGet)
}
