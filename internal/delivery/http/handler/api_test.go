package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"resumeforge/internal/delivery/http/handler"
	"resumeforge/internal/delivery/http/middleware"
	"resumeforge/internal/delivery/http/routes"
	"resumeforge/internal/domain/analysis"
	"resumeforge/internal/domain/job"
	"resumeforge/internal/domain/resume"
	"resumeforge/internal/domain/tracking"
	"resumeforge/internal/domain/user"
	"resumeforge/internal/schema"
	"resumeforge/internal/snapshot"
	"resumeforge/internal/usecase"
)

type fakePinger struct{ err error }

func (p *fakePinger) Ping(ctx context.Context) error { return p.err }

type fakeExtractor struct {
	jd      *schema.JobDescription
	rd      *schema.ResumeData
	err     error
	jdCalls int
	rdCalls int
}

func (f *fakeExtractor) AnalyzeJobDescription(ctx context.Context, jdText string) (*schema.JobDescription, error) {
	f.jdCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.jd, nil
}

func (f *fakeExtractor) AnalyzeResume(ctx context.Context, resumeText string) (*schema.ResumeData, error) {
	f.rdCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rd, nil
}

type memUserRepo struct{ users map[string]user.User }

func (r *memUserRepo) Put(ctx context.Context, u *user.User) error {
	r.users[u.UserID] = *u
	return nil
}

func (r *memUserRepo) Get(ctx context.Context, id string) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, user.ErrNotFound
}

type memJobRepo struct{ jobs map[string]job.Job }

func (r *memJobRepo) Put(ctx context.Context, j *job.Job) error {
	r.jobs[j.JobID] = *j
	return nil
}

func (r *memJobRepo) Get(ctx context.Context, id string) (*job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, job.ErrNotFound
	}
	return &j, nil
}

func (r *memJobRepo) ListByUser(ctx context.Context, userID string, includeDeleted bool) ([]job.Job, error) {
	var out []job.Job
	for _, j := range r.jobs {
		if j.UserID != userID {
			continue
		}
		if !includeDeleted && j.Status == job.StatusDeleted {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

type memBaseRepo struct{ resumes map[string]resume.BaseResume }

func (r *memBaseRepo) Put(ctx context.Context, br *resume.BaseResume) error {
	r.resumes[br.ResumeID] = *br
	return nil
}

func (r *memBaseRepo) Get(ctx context.Context, id string) (*resume.BaseResume, error) {
	br, ok := r.resumes[id]
	if !ok {
		return nil, resume.ErrNotFound
	}
	return &br, nil
}

func (r *memBaseRepo) ListByUser(ctx context.Context, userID string) ([]resume.BaseResume, error) {
	var out []resume.BaseResume
	for _, br := range r.resumes {
		if br.UserID == userID {
			out = append(out, br)
		}
	}
	return out, nil
}

type memGeneratedRepo struct{ resumes map[string]resume.GeneratedResume }

func (r *memGeneratedRepo) Put(ctx context.Context, gr *resume.GeneratedResume) error {
	r.resumes[gr.GeneratedResumeID] = *gr
	return nil
}

func (r *memGeneratedRepo) Get(ctx context.Context, id string) (*resume.GeneratedResume, error) {
	gr, ok := r.resumes[id]
	if !ok {
		return nil, resume.ErrNotFound
	}
	return &gr, nil
}

func (r *memGeneratedRepo) ListByUser(ctx context.Context, userID string) ([]resume.GeneratedResume, error) {
	var out []resume.GeneratedResume
	for _, gr := range r.resumes {
		if gr.UserID == userID {
			out = append(out, gr)
		}
	}
	return out, nil
}

func (r *memGeneratedRepo) ListByJob(ctx context.Context, jobID string) ([]resume.GeneratedResume, error) {
	var out []resume.GeneratedResume
	for _, gr := range r.resumes {
		if gr.JobID == jobID {
			out = append(out, gr)
		}
	}
	return out, nil
}

type memAnalysisRepo struct{ analyses map[string]analysis.ResumeAnalysis }

func (r *memAnalysisRepo) Put(ctx context.Context, a *analysis.ResumeAnalysis) error {
	r.analyses[a.AnalysisID] = *a
	return nil
}

func (r *memAnalysisRepo) Get(ctx context.Context, id string) (*analysis.ResumeAnalysis, error) {
	a, ok := r.analyses[id]
	if !ok {
		return nil, analysis.ErrNotFound
	}
	return &a, nil
}

func (r *memAnalysisRepo) ListByJob(ctx context.Context, jobID string) ([]analysis.ResumeAnalysis, error) {
	var out []analysis.ResumeAnalysis
	for _, a := range r.analyses {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAnalysisRepo) ListByUser(ctx context.Context, userID string) ([]analysis.ResumeAnalysis, error) {
	var out []analysis.ResumeAnalysis
	for _, a := range r.analyses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memTrackingRepo struct{ events []tracking.ApplicationTracking }

func (r *memTrackingRepo) Put(ctx context.Context, t *tracking.ApplicationTracking) error {
	r.events = append(r.events, *t)
	return nil
}

func (r *memTrackingRepo) ListByJob(ctx context.Context, jobID string) ([]tracking.ApplicationTracking, error) {
	var out []tracking.ApplicationTracking
	for _, e := range r.events {
		if e.JobID == jobID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memTrackingRepo) ListByUser(ctx context.Context, userID string) ([]tracking.ApplicationTracking, error) {
	var out []tracking.ApplicationTracking
	for _, e := range r.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeFiles struct{}

func (f *fakeFiles) Enabled() bool { return true }

func (f *fakeFiles) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return "s3://test-bucket/" + key, nil
}

func (f *fakeFiles) DownloadURL(ctx context.Context, locator string) (string, error) {
	return "https://signed.example/download", nil
}

func (f *fakeFiles) PreviewURL(ctx context.Context, locator string) (string, error) {
	return "https://signed.example/preview", nil
}

type testEnv struct {
	app      *fiber.App
	ex       *fakeExtractor
	pinger   *fakePinger
	users    *memUserRepo
	jobs     *memJobRepo
	base     *memBaseRepo
	tracking *memTrackingRepo
}

func newTestEnv(t *testing.T, ex *fakeExtractor) *testEnv {
	t.Helper()

	store, err := snapshot.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	logger := zap.NewNop()
	usersRepo := &memUserRepo{users: map[string]user.User{}}
	jobsRepo := &memJobRepo{jobs: map[string]job.Job{}}
	baseRepo := &memBaseRepo{resumes: map[string]resume.BaseResume{}}
	genRepo := &memGeneratedRepo{resumes: map[string]resume.GeneratedResume{}}
	analysisRepo := &memAnalysisRepo{analyses: map[string]analysis.ResumeAnalysis{}}
	trackingRepo := &memTrackingRepo{}

	analyzer := usecase.NewAnalyzer(ex, store, logger)
	users := usecase.NewUserUsecase(usersRepo, logger)
	jobs := usecase.NewJobUsecase(jobsRepo, trackingRepo, analyzer, logger)
	resumes := usecase.NewResumeUsecase(baseRepo, genRepo, usersRepo, &fakeFiles{}, analyzer, logger)
	analyses := usecase.NewAnalysisUsecase(analysisRepo, jobsRepo, baseRepo, logger)
	dashboard := usecase.NewDashboardUsecase(jobsRepo, baseRepo, genRepo, analysisRepo, logger)

	pinger := &fakePinger{}

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	routes.NewRegistry(
		handler.NewHealthHandler(pinger, "resumeforge", "test"),
		handler.NewAnalyzeHandler(analyzer, jobs, analyses, logger),
		handler.NewUserHandler(users, jobs, resumes, dashboard),
		handler.NewJobHandler(jobs),
		handler.NewResumeHandler(resumes),
		handler.NewAnalysisHandler(analyses),
		handler.NewJDFilesHandler(store),
	).Register(app)

	return &testEnv{
		app:      app,
		ex:       ex,
		pinger:   pinger,
		users:    usersRepo,
		jobs:     jobsRepo,
		base:     baseRepo,
		tracking: trackingRepo,
	}
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, env
}

func TestAnalyzeJD_BlankTextRejectedBeforeExtraction(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{jd: &schema.JobDescription{JobTitle: "x"}})

	resp, _ := doJSON(t, env.app, "POST", "/api/analyze-jd", map[string]string{"jd_text": "   "})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if env.ex.jdCalls != 0 {
		t.Fatalf("extractor must not be invoked for blank text")
	}
}

func TestAnalyzeJD_EndToEnd(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{jd: &schema.JobDescription{
		JobTitle:       "Senior Data Analyst",
		CompanyName:    "Acme",
		SalaryRange:    "$120k-$140k",
		WorkLocation:   "remote",
		RequiredSkills: []string{"SQL", "Python"},
	}})

	resp, body := doJSON(t, env.app, "POST", "/api/analyze-jd", map[string]string{"jd_text": "long posting"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, body.Message)
	}

	var data struct {
		JobTitle       string   `json:"job_title"`
		SalaryRange    string   `json:"salary_range"`
		WorkLocation   string   `json:"work_location"`
		RequiredSkills []string `json:"required_skills"`
		JobID          string   `json:"job_id"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.JobTitle != "Senior Data Analyst" {
		t.Fatalf("unexpected title %q", data.JobTitle)
	}
	if data.SalaryRange != "$120k-$140k" || data.WorkLocation != "remote" {
		t.Fatalf("salary/location not carried through: %+v", data)
	}
	if len(data.RequiredSkills) != 2 || data.RequiredSkills[0] != "SQL" {
		t.Fatalf("unexpected skills %v", data.RequiredSkills)
	}
	if data.JobID != "" {
		t.Fatalf("no job must be saved without user_id")
	}
}

func TestAnalyzeJD_ExtractionFailure(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{err: errTest})

	resp, _ := doJSON(t, env.app, "POST", "/api/analyze-jd", map[string]string{"jd_text": "posting"})
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}

func TestAnalyzeJD_WithUserSavesJob(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{jd: &schema.JobDescription{JobTitle: "Engineer"}})

	_, body := doJSON(t, env.app, "POST", "/api/analyze-jd", map[string]string{
		"jd_text": "posting",
		"user_id": "u1",
	})
	var data struct {
		JobID string `json:"job_id"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.JobID == "" {
		t.Fatalf("job_id expected when user_id is supplied")
	}
	if _, ok := env.jobs.jobs[data.JobID]; !ok {
		t.Fatalf("job must be persisted")
	}
}

func TestAnalyzeResume_Multipart(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{rd: &schema.ResumeData{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555",
	}})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte("Jane Doe\njane@example.com")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/analyze-resume", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var env2 envelope
	if err := json.NewDecoder(resp.Body).Decode(&env2); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var data struct {
		FullName string `json:"full_name"`
	}
	if err := json.Unmarshal(env2.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.FullName != "Jane Doe" {
		t.Fatalf("unexpected name %q", data.FullName)
	}
}

func TestAnalyzeResume_UnsupportedExtension(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{rd: &schema.ResumeData{FullName: "J"}})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, _ := w.CreateFormFile("file", "resume.png")
	part.Write([]byte("binary"))
	w.Close()

	req := httptest.NewRequest("POST", "/api/analyze-resume", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if env.ex.rdCalls != 0 {
		t.Fatalf("extractor must not run on unsupported files")
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "healthy" || body["database"] != "connected" {
		t.Fatalf("unexpected health payload %v", body)
	}

	env.pinger.err = errTest
	resp, err = env.app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "degraded" || body["database"] != "disconnected" {
		t.Fatalf("unexpected degraded payload %v", body)
	}
}

func TestCreateUser_Idempotent(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{})

	resp, body := doJSON(t, env.app, "POST", "/api/users", map[string]string{
		"email":      "jane@example.com",
		"first_name": "Jane",
		"last_name":  "Doe",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var first struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(body.Data, &first); err != nil {
		t.Fatalf("decode: %v", err)
	}

	resp, body = doJSON(t, env.app, "POST", "/api/users", map[string]string{"email": "jane@example.com"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on repeat, got %d", resp.StatusCode)
	}
	var second struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(body.Data, &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first.UserID != second.UserID {
		t.Fatalf("repeat create must return the same user")
	}
}

func TestGetJob_NotFound(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{})

	resp, _ := doJSON(t, env.app, "GET", "/api/jobs/missing", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestJobLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{jd: &schema.JobDescription{JobTitle: "Engineer", CompanyName: "Acme"}})

	resp, body := doJSON(t, env.app, "POST", "/api/jobs", map[string]string{
		"user_id": "u1",
		"jd_text": "posting",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", resp.StatusCode, body.Message)
	}
	var created struct {
		JobID string `json:"job_id"`
	}
	if err := json.Unmarshal(body.Data, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	resp, _ = doJSON(t, env.app, "PUT", "/api/jobs/"+created.JobID+"/status", map[string]string{
		"status": "applied",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status update failed: %d", resp.StatusCode)
	}
	if len(env.tracking.events) != 1 {
		t.Fatalf("status change must record a tracking event")
	}

	resp, _ = doJSON(t, env.app, "DELETE", "/api/jobs/"+created.JobID, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete failed: %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, env.app, "POST", "/api/jobs/"+created.JobID+"/restore", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("restore failed: %d", resp.StatusCode)
	}

	stored := env.jobs.jobs[created.JobID]
	if stored.Status != job.StatusActive {
		t.Fatalf("restored job must be active, got %q", stored.Status)
	}
	if stored.ApplicationStatus != job.StatusApplied {
		t.Fatalf("restore must keep the applied state, got %q", stored.ApplicationStatus)
	}
}

var errTest = errTestType{}

type errTestType struct{}

func (errTestType) Error() string { return "test failure" }
