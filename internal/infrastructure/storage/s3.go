// Package storage uploads resume files to S3 and issues presigned URLs.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ErrDisabled is returned when the gateway could not reach its bucket at
// startup and file storage is turned off.
var ErrDisabled = errors.New("file storage is disabled")

const (
	downloadExpiry = time.Hour
	previewExpiry  = 2 * time.Hour
)

// Gateway wraps the S3 client for resume file storage. A gateway that
// fails its startup probe degrades to disabled instead of taking the
// whole service down: uploads error, everything else keeps working.
type Gateway struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	enabled bool
	logger  *zap.Logger
}

// NewGateway probes the bucket and returns a gateway. An unreachable
// bucket yields a disabled gateway, not an error.
func NewGateway(ctx context.Context, client *s3.Client, bucket string, logger *zap.Logger) *Gateway {
	g := &Gateway{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		logger:  logger,
	}

	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		logger.Warn("s3 bucket unreachable, file storage disabled",
			zap.String("bucket", bucket),
			zap.Error(err),
		)
		return g
	}
	g.enabled = true
	return g
}

// Enabled reports whether uploads and presigning are available.
func (g *Gateway) Enabled() bool {
	return g.enabled
}

// BuildKey derives the object key for an uploaded resume. Layout:
// {first}_{last}_{uid8}/resumes/{YYYYMMDD_HHMMSS}_{filename}.
func BuildKey(firstName, lastName, userID, filename string, now time.Time) string {
	uid := userID
	if len(uid) > 8 {
		uid = uid[:8]
	}
	folder := fmt.Sprintf("%s_%s_%s",
		cleanComponent(firstName),
		cleanComponent(lastName),
		uid,
	)
	return fmt.Sprintf("%s/resumes/%s_%s",
		folder,
		now.Format("20060102_150405"),
		cleanFilename(filename),
	)
}

// Upload stores the file and returns its s3:// locator.
func (g *Gateway) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if !g.enabled {
		return "", ErrDisabled
	}
	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	g.logger.Info("resume uploaded",
		zap.String("bucket", g.bucket),
		zap.String("key", key),
		zap.Int("size", len(data)),
	)
	return "s3://" + g.bucket + "/" + key, nil
}

// DownloadURL presigns a one hour GET for the stored object.
func (g *Gateway) DownloadURL(ctx context.Context, locator string) (string, error) {
	return g.presignGet(ctx, locator, downloadExpiry, "attachment")
}

// PreviewURL presigns a two hour inline GET for viewing in the browser.
func (g *Gateway) PreviewURL(ctx context.Context, locator string) (string, error) {
	return g.presignGet(ctx, locator, previewExpiry, "inline")
}

func (g *Gateway) presignGet(ctx context.Context, locator string, expiry time.Duration, disposition string) (string, error) {
	if !g.enabled {
		return "", ErrDisabled
	}
	bucket, key, err := ParseLocator(locator)
	if err != nil {
		return "", err
	}
	req, err := g.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(disposition),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}

// ParseLocator splits an s3://bucket/key locator.
func ParseLocator(locator string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(locator, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 locator: %q", locator)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("malformed s3 locator: %q", locator)
	}
	return bucket, key, nil
}

func cleanComponent(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "unknown"
	}
	return sanitize(s)
}

func cleanFilename(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "resume"
	}
	return sanitize(s)
}

// sanitize replaces every character outside [A-Za-z0-9._-] with an
// underscore so the key is safe in URLs and console listings.
func sanitize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
