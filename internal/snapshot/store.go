package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"resumeforge/internal/schema"
)

// ErrNotFound is returned when no snapshot file matches the requested id.
var ErrNotFound = errors.New("snapshot not found")

const (
	jdPrefix     = "jd_"
	resumePrefix = "resume_"
)

// Document is the on-disk shape of one analysis snapshot.
type Document struct {
	Timestamp    string         `json:"timestamp"`
	OriginalText string         `json:"original_text"`
	Analysis     any            `json:"analysis"`
	Metadata     map[string]any `json:"metadata"`
}

// Summary is the listing view of a job description snapshot.
type Summary struct {
	ID              string `json:"id"`
	JobTitle        string `json:"job_title"`
	CompanyName     string `json:"company_name"`
	EmploymentType  string `json:"employment_type"`
	WorkLocation    string `json:"work_location"`
	LocationDetails string `json:"location_details"`
	Industry        string `json:"industry"`
}

// Store writes sequentially numbered JSON snapshots of every successful
// analysis into a local directory. Failures here are never fatal to the
// request that triggered the save.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// SaveJD persists a job description analysis as the next jd_NNN.json file
// and returns the filename it wrote.
func (s *Store) SaveJD(jdText string, analysis *schema.JobDescription) (string, error) {
	now := time.Now()
	doc := Document{
		Timestamp:    now.Format(time.RFC3339),
		OriginalText: jdText,
		Analysis:     analysis,
		Metadata: map[string]any{
			"job_title": analysis.JobTitle,
			"company":   analysis.CompanyName,
			"saved_at":  now.Format(time.RFC3339),
		},
	}
	return s.write(jdPrefix, doc)
}

// SaveResume persists a resume analysis as the next resume_NNN.json file.
// Long narrative fields are truncated in the metadata block so listings
// stay small.
func (s *Store) SaveResume(resumeText string, analysis *schema.ResumeData) (string, error) {
	now := time.Now()
	doc := Document{
		Timestamp:    now.Format(time.RFC3339),
		OriginalText: resumeText,
		Analysis:     analysis,
		Metadata: map[string]any{
			"candidate_name":       analysis.FullName,
			"professional_context": truncate(analysis.ProfessionalContext, 100),
			"career_summary":       truncate(analysis.CareerSummary, 100),
			"saved_at":             now.Format(time.RFC3339),
		},
	}
	return s.write(resumePrefix, doc)
}

func (s *Store) write(prefix string, doc Document) (string, error) {
	name, err := s.nextFilename(prefix)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return name, nil
}

// nextFilename picks max existing sequence number plus one, so deleting an
// older snapshot never causes a reuse collision with the newest one.
func (s *Store) nextFilename(prefix string) (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("read snapshot dir: %w", err)
	}
	max := 0
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		seq := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".json")
		n, err := strconv.Atoi(seq)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d.json", prefix, max+1), nil
}

// ListJD returns summaries of every readable jd_*.json snapshot, newest
// sequence first. Corrupt files are skipped rather than failing the listing.
func (s *Store) ListJD() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read snapshot dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, jdPrefix) && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	summaries := make([]Summary, 0, len(names))
	for _, name := range names {
		doc, err := s.read(name)
		if err != nil {
			continue
		}
		var jd schema.JobDescription
		raw, err := json.Marshal(doc.Analysis)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(raw, &jd); err != nil {
			continue
		}
		summaries = append(summaries, Summary{
			ID:              strings.TrimSuffix(name, ".json"),
			JobTitle:        jd.JobTitle,
			CompanyName:     jd.CompanyName,
			EmploymentType:  jd.EmploymentType,
			WorkLocation:    jd.WorkLocation,
			LocationDetails: jd.LocationDetails,
			Industry:        jd.Industry,
		})
	}
	return summaries, nil
}

// GetJD loads one snapshot document by id. Accepts both "jd_001" and a bare
// "001" for convenience. The id ends up in a filesystem path, so anything
// outside the jd_NNN shape is rejected before the join.
func (s *Store) GetJD(id string) (*Document, error) {
	if !strings.HasPrefix(id, jdPrefix) {
		id = jdPrefix + id
	}
	if !isDigits(strings.TrimPrefix(id, jdPrefix)) {
		return nil, ErrNotFound
	}
	doc, err := s.read(id + ".json")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *Store) read(name string) (*Document, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", name, err)
	}
	return &doc, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
