package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"resumeforge/internal/domain/analysis"
	"resumeforge/internal/domain/job"
	"resumeforge/internal/domain/resume"
	"resumeforge/internal/domain/tracking"
	"resumeforge/internal/domain/user"
	"resumeforge/internal/schema"
)

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

func newTestAnalyzer(ex *fakeExtractor) *Analyzer {
	return NewAnalyzer(ex, nil, zap.NewNop())
}

type memUserRepo struct {
	users map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]user.User{}}
}

func (r *memUserRepo) Put(ctx context.Context, u *user.User) error {
	r.users[u.UserID] = *u
	return nil
}

func (r *memUserRepo) Get(ctx context.Context, userID string) (*user.User, error) {
	u, ok := r.users[userID]
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

type memJobRepo struct {
	jobs   map[string]job.Job
	putErr error
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[string]job.Job{}}
}

func (r *memJobRepo) Put(ctx context.Context, j *job.Job) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.jobs[j.JobID] = *j
	return nil
}

func (r *memJobRepo) Get(ctx context.Context, jobID string) (*job.Job, error) {
	j, ok := r.jobs[jobID]
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

type memBaseRepo struct {
	resumes map[string]resume.BaseResume
}

func newMemBaseRepo() *memBaseRepo {
	return &memBaseRepo{resumes: map[string]resume.BaseResume{}}
}

func (r *memBaseRepo) Put(ctx context.Context, br *resume.BaseResume) error {
	r.resumes[br.ResumeID] = *br
	return nil
}

func (r *memBaseRepo) Get(ctx context.Context, resumeID string) (*resume.BaseResume, error) {
	br, ok := r.resumes[resumeID]
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

type memGeneratedRepo struct {
	resumes map[string]resume.GeneratedResume
}

func newMemGeneratedRepo() *memGeneratedRepo {
	return &memGeneratedRepo{resumes: map[string]resume.GeneratedResume{}}
}

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

type memAnalysisRepo struct {
	analyses map[string]analysis.ResumeAnalysis
}

func newMemAnalysisRepo() *memAnalysisRepo {
	return &memAnalysisRepo{analyses: map[string]analysis.ResumeAnalysis{}}
}

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

type memTrackingRepo struct {
	events []tracking.ApplicationTracking
	putErr error
}

func newMemTrackingRepo() *memTrackingRepo {
	return &memTrackingRepo{}
}

func (r *memTrackingRepo) Put(ctx context.Context, t *tracking.ApplicationTracking) error {
	if r.putErr != nil {
		return r.putErr
	}
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

type fakeFiles struct {
	enabled   bool
	uploadErr error
	uploads   map[string][]byte
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{enabled: true, uploads: map[string][]byte{}}
}

func (f *fakeFiles) Enabled() bool { return f.enabled }

func (f *fakeFiles) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if !f.enabled {
		return "", errors.New("storage disabled")
	}
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads[key] = data
	return "s3://test-bucket/" + key, nil
}

func (f *fakeFiles) DownloadURL(ctx context.Context, locator string) (string, error) {
	return "https://signed.example/download/" + locator, nil
}

func (f *fakeFiles) PreviewURL(ctx context.Context, locator string) (string, error) {
	return "https://signed.example/preview/" + locator, nil
}
