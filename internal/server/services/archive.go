package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/spakiosk/internal/logging"
	sc "github.com/dmitrijs2005/spakiosk/internal/server/config"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// ArchiveResult describes one uploaded export. Key is empty when the range
// held no events and nothing was uploaded.
type ArchiveResult struct {
	Bucket string
	Key    string
	Count  int
}

// EventArchiver exports the audit log to object storage as JSON lines.
type EventArchiver struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	log         logging.Logger
}

func NewEventArchiver(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config, log logging.Logger) *EventArchiver {
	return &EventArchiver{
		db:          db,
		repomanager: m,
		config:      cfg,
		log:         log.With("module", "archive"),
	}
}

// ArchiveKey returns a unique object key under the day of from.
func ArchiveKey(from time.Time) string {
	d := from.UTC()
	return fmt.Sprintf("events/%04d/%02d/%02d/%s.jsonl", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (a *EventArchiver) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(a.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.config.S3RootUser,
			a.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if a.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(a.config.S3BaseEndpoint)
		}
		o.UsePathStyle = true
	}), nil
}

// Export uploads every event with from <= created_at < to.
func (a *EventArchiver) Export(ctx context.Context, from, to time.Time) (*ArchiveResult, error) {
	if !from.Before(to) {
		return nil, errors.New("export range is empty")
	}

	events, err := a.repomanager.Events(a.db).ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("error reading events: %w", err)
	}
	res := &ArchiveResult{Bucket: a.config.S3Bucket, Count: len(events)}
	if len(events) == 0 {
		a.log.Info(ctx, "no events to export", "from", from, "to", to)
		return res, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return nil, fmt.Errorf("error encoding event %d: %w", e.ID, err)
		}
	}

	client, err := a.getClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error configuring object storage: %w", err)
	}

	bucket := a.config.S3Bucket
	key := ArchiveKey(from)
	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/x-ndjson"),
	})
	if err != nil {
		return nil, fmt.Errorf("error uploading %s: %w", key, err)
	}

	res.Key = key
	a.log.Info(ctx, "events exported", "bucket", bucket, "key", key, "count", len(events))
	return res, nil
}
