package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumeforge/internal/domain/resume"
	"resumeforge/internal/domain/user"
	"resumeforge/internal/extract"
	"resumeforge/internal/infrastructure/storage"
	"resumeforge/internal/schema"
)

// MaxUploadSize caps resume uploads at 10 MB.
const MaxUploadSize = 10 << 20

// FileStore is the slice of the storage gateway the resume flows need.
type FileStore interface {
	Enabled() bool
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DownloadURL(ctx context.Context, locator string) (string, error)
	PreviewURL(ctx context.Context, locator string) (string, error)
}

// ResumeDetails is either a base resume or a generated one, whichever the
// id resolved to.
type ResumeDetails struct {
	Base      *resume.BaseResume      `json:"base_resume,omitempty"`
	Generated *resume.GeneratedResume `json:"generated_resume,omitempty"`
}

// ResumeUsecase manages uploaded resumes and their tailored renditions.
type ResumeUsecase struct {
	base      resume.BaseRepository
	generated resume.GeneratedRepository
	users     user.Repository
	files     FileStore
	analyzer  *Analyzer
	logger    *zap.Logger
}

func NewResumeUsecase(
	base resume.BaseRepository,
	generated resume.GeneratedRepository,
	users user.Repository,
	files FileStore,
	analyzer *Analyzer,
	logger *zap.Logger,
) *ResumeUsecase {
	return &ResumeUsecase{
		base:      base,
		generated: generated,
		users:     users,
		files:     files,
		analyzer:  analyzer,
		logger:    logger,
	}
}

// Create saves a resume from an uploaded file without pushing it to
// object storage. The record carries a temp locator so later presign
// attempts fail cleanly.
func (uc *ResumeUsecase) Create(ctx context.Context, userID, fileName string, data []byte) (*resume.BaseResume, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	text, err := uc.validateAndExtract(fileName, data)
	if err != nil {
		return nil, err
	}

	parsed := uc.analyzer.AnalyzeResume(ctx, text)
	return uc.save(ctx, userID, fileName, "temp/"+fileName, int64(len(data)), parsed)
}

// Upload stores a resume file, extracts and analyzes its text, and saves
// the record. A storage outage degrades the locator to temp/ instead of
// failing the upload.
func (uc *ResumeUsecase) Upload(ctx context.Context, userID, fileName string, data []byte) (*resume.BaseResume, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	text, err := uc.validateAndExtract(fileName, data)
	if err != nil {
		return nil, err
	}

	u, err := uc.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	key := storage.BuildKey(u.FirstName, u.LastName, u.UserID, fileName, time.Now())
	fileURL, err := uc.files.Upload(ctx, key, data, contentTypeFor(fileName))
	if err != nil {
		uc.logger.Warn("resume upload to storage failed, keeping record without file",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		fileURL = "temp/" + fileName
	}

	parsed := uc.analyzer.AnalyzeResume(ctx, text)
	return uc.save(ctx, userID, fileName, fileURL, int64(len(data)), parsed)
}

func (uc *ResumeUsecase) validateAndExtract(fileName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("%w: file exceeds the 10MB limit", ErrInvalidInput)
	}
	if !extract.IsSupported(fileName) {
		return "", fmt.Errorf("%w: unsupported file type, allowed: %s",
			ErrInvalidInput, strings.Join(extract.SupportedExtensions, ", "))
	}

	text, err := extract.FromFile(fileName, data)
	if err != nil {
		return "", fmt.Errorf("%w: could not extract text: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: file contains no extractable text", ErrInvalidInput)
	}
	return text, nil
}

func (uc *ResumeUsecase) save(ctx context.Context, userID, fileName, fileURL string, fileSize int64, parsed *schema.ResumeData) (*resume.BaseResume, error) {
	existing, err := uc.base.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	now := time.Now()
	br := &resume.BaseResume{
		ResumeID:         uuid.NewString(),
		UserID:           userID,
		FileName:         fileName,
		OriginalFilename: fileName,
		ResumeName:       strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		FileType:         strings.TrimPrefix(ext, "."),
		FileSize:         fileSize,
		FileURL:          fileURL,
		IsPrimary:        len(existing) == 0,
		Version:          len(existing) + 1,
		ParsedContent:    parsed,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.base.Put(ctx, br); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("resume saved",
		zap.String("resume_id", br.ResumeID),
		zap.String("user_id", userID),
		zap.Bool("is_primary", br.IsPrimary),
	)
	return br, nil
}

// ListByUser returns the user's base resumes, newest first.
func (uc *ResumeUsecase) ListByUser(ctx context.Context, userID string) ([]resume.BaseResume, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	resumes, err := uc.base.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	sort.Slice(resumes, func(i, k int) bool {
		return resumes[i].CreatedAt.After(resumes[k].CreatedAt)
	})
	return resumes, nil
}

// ListGenerated returns the user's tailored renditions, newest first.
func (uc *ResumeUsecase) ListGenerated(ctx context.Context, userID string) ([]resume.GeneratedResume, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	resumes, err := uc.generated.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	sort.Slice(resumes, func(i, k int) bool {
		return resumes[i].CreatedAt.After(resumes[k].CreatedAt)
	})
	return resumes, nil
}

// GetDetails resolves an id against base resumes first, then generated
// ones.
func (uc *ResumeUsecase) GetDetails(ctx context.Context, resumeID string) (*ResumeDetails, error) {
	br, err := uc.base.Get(ctx, resumeID)
	if err == nil {
		return &ResumeDetails{Base: br}, nil
	}
	if !errors.Is(err, resume.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	gr, err := uc.generated.Get(ctx, resumeID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return &ResumeDetails{Generated: gr}, nil
}

// DownloadURL presigns a download link for the resume file. Downloads of
// generated resumes bump their download counter.
func (uc *ResumeUsecase) DownloadURL(ctx context.Context, resumeID string) (string, error) {
	details, err := uc.GetDetails(ctx, resumeID)
	if err != nil {
		return "", err
	}

	locator := ""
	if details.Base != nil {
		locator = details.Base.FileURL
	} else {
		locator = details.Generated.FileURL
	}
	url, err := uc.presign(ctx, locator, uc.files.DownloadURL)
	if err != nil {
		return "", err
	}

	if details.Generated != nil {
		gr := details.Generated
		gr.DownloadCount++
		gr.UpdatedAt = time.Now()
		if err := uc.generated.Put(ctx, gr); err != nil {
			uc.logger.Warn("failed to bump download count",
				zap.String("generated_resume_id", gr.GeneratedResumeID),
				zap.Error(err),
			)
		}
	}
	return url, nil
}

// PreviewURL presigns an inline view link for the resume file.
func (uc *ResumeUsecase) PreviewURL(ctx context.Context, resumeID string) (string, error) {
	details, err := uc.GetDetails(ctx, resumeID)
	if err != nil {
		return "", err
	}
	locator := ""
	if details.Base != nil {
		locator = details.Base.FileURL
	} else {
		locator = details.Generated.FileURL
	}
	return uc.presign(ctx, locator, uc.files.PreviewURL)
}

func (uc *ResumeUsecase) presign(ctx context.Context, locator string, sign func(context.Context, string) (string, error)) (string, error) {
	if !strings.HasPrefix(locator, "s3://") {
		return "", fmt.Errorf("%w: resume has no stored file", ErrInvalidInput)
	}
	url, err := sign(ctx, locator)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return url, nil
}

// SetPrimary makes one resume the user's primary and unsets the rest.
// The unset-then-set sequence is not atomic; a concurrent call can leave
// two primaries until the next invocation.
func (uc *ResumeUsecase) SetPrimary(ctx context.Context, userID, resumeID string) (*resume.BaseResume, error) {
	resumes, err := uc.base.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var target *resume.BaseResume
	for i := range resumes {
		if resumes[i].ResumeID == resumeID {
			target = &resumes[i]
			break
		}
	}
	if target == nil {
		return nil, resume.ErrNotFound
	}

	now := time.Now()
	for i := range resumes {
		r := &resumes[i]
		if r.ResumeID == resumeID || !r.IsPrimary {
			continue
		}
		r.IsPrimary = false
		r.UpdatedAt = now
		if err := uc.base.Put(ctx, r); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	target.IsPrimary = true
	target.UpdatedAt = now
	if err := uc.base.Put(ctx, target); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("primary resume set",
		zap.String("user_id", userID),
		zap.String("resume_id", resumeID),
	)
	return target, nil
}

func contentTypeFor(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	default:
		return "text/plain"
	}
}
