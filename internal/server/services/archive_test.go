package services

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedPut struct {
	bucket, key, contentType string
	body                     []byte
}

func stubS3(t *testing.T, putErr error) *[]capturedPut {
	t.Helper()
	origLoad, origPut := loadDefaultAWSConfig, putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		putObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{Region: "eu-central-1"}, nil
	}
	var puts []capturedPut
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		if putErr != nil {
			return nil, putErr
		}
		body, err := io.ReadAll(in.Body)
		if err != nil {
			return nil, err
		}
		puts = append(puts, capturedPut{
			bucket:      aws.ToString(in.Bucket),
			key:         aws.ToString(in.Key),
			contentType: aws.ToString(in.ContentType),
			body:        body,
		})
		return &s3.PutObjectOutput{}, nil
	}
	return &puts
}

func seedEvents(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	for _, typ := range []models.EventType{models.EventTokenIssued, models.EventCouponAwarded, models.EventOptOut} {
		_, err := env.events.LogEvent(ctx, EventEntry{Type: typ, Phone: testPhone})
		require.NoError(t, err)
		env.clock.Advance(time.Hour)
	}
}

func TestExport_UploadsJSONLines(t *testing.T) {
	env := newTestEnv(t)
	seedEvents(t, env)
	puts := stubS3(t, nil)

	a := NewEventArchiver(env.db, env.store, env.cfg, logging.Nop())
	res, err := a.Export(context.Background(), t0, t0.Add(2*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "spakiosk-audit", res.Bucket)
	assert.True(t, strings.HasPrefix(res.Key, "events/2026/10/17/"), res.Key)
	assert.True(t, strings.HasSuffix(res.Key, ".jsonl"), res.Key)

	require.Len(t, *puts, 1)
	put := (*puts)[0]
	assert.Equal(t, "spakiosk-audit", put.bucket)
	assert.Equal(t, res.Key, put.key)
	assert.Equal(t, "application/x-ndjson", put.contentType)

	var types []models.EventType
	sc := bufio.NewScanner(strings.NewReader(string(put.body)))
	for sc.Scan() {
		var ev models.CouponEvent
		require.NoError(t, json.Unmarshal(sc.Bytes(), &ev))
		assert.Equal(t, "********4567", ev.Phone)
		types = append(types, ev.EventType)
	}
	assert.Equal(t, []models.EventType{models.EventTokenIssued, models.EventCouponAwarded}, types)
}

func TestExport_EmptyRangeSkipsUpload(t *testing.T) {
	env := newTestEnv(t)
	puts := stubS3(t, nil)

	a := NewEventArchiver(env.db, env.store, env.cfg, logging.Nop())
	res, err := a.Export(context.Background(), t0, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, res.Count)
	assert.Empty(t, res.Key)
	assert.Empty(t, *puts)
}

func TestExport_InvalidRange(t *testing.T) {
	env := newTestEnv(t)
	a := NewEventArchiver(env.db, env.store, env.cfg, logging.Nop())

	_, err := a.Export(context.Background(), t0, t0)
	assert.Error(t, err)
}

func TestExport_UploadError(t *testing.T) {
	env := newTestEnv(t)
	seedEvents(t, env)
	stubS3(t, errors.New("bucket missing"))

	a := NewEventArchiver(env.db, env.store, env.cfg, logging.Nop())
	_, err := a.Export(context.Background(), t0, t0.Add(24*time.Hour))
	assert.ErrorContains(t, err, "bucket missing")
}

func TestExport_ConfigError(t *testing.T) {
	env := newTestEnv(t)
	seedEvents(t, env)
	stubS3(t, nil)
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no credentials")
	}

	a := NewEventArchiver(env.db, env.store, env.cfg, logging.Nop())
	_, err := a.Export(context.Background(), t0, t0.Add(24*time.Hour))
	assert.ErrorContains(t, err, "no credentials")
}

func TestArchiveKey(t *testing.T) {
	k := ArchiveKey(time.Date(2026, 1, 2, 23, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(k, "events/2026/01/02/"), k)
}
