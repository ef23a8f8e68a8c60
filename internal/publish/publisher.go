package publish

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Result summarizes a publish run.
type Result struct {
	RunID    string
	Uploaded []string
	Skipped  []string
}

// Publisher uploads rendered files, skipping those whose content matches
// the manifest.
type Publisher struct {
	uploader Uploader
	manifest *Manifest
	now      func() time.Time
}

// NewPublisher creates a new Publisher.
func NewPublisher(uploader Uploader, manifest *Manifest) *Publisher {
	return &Publisher{
		uploader: uploader,
		manifest: manifest,
		now:      time.Now,
	}
}

// Publish uploads files in order. With force set every file is uploaded
// regardless of the manifest.
func (p *Publisher) Publish(ctx context.Context, files []File, force bool) (*Result, error) {
	result := &Result{RunID: uuid.New().String()}
	dest := p.uploader.Destination()

	logger := log.With().
		Str("run_id", result.RunID).
		Str("destination", dest).
		Logger()

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		sum := Checksum(f.Body)
		key := p.uploader.ObjectKey(f.Key)

		if !force {
			prev, ok, err := p.manifest.Checksum(ctx, dest, key)
			if err != nil {
				return result, err
			}
			if ok && prev == sum {
				logger.Debug().Str("key", f.Key).Msg("Unchanged, skipping")
				result.Skipped = append(result.Skipped, f.Key)
				continue
			}
		}

		if err := p.uploader.Put(ctx, f); err != nil {
			return result, err
		}

		err := p.manifest.Record(ctx, Entry{
			Destination: dest,
			Key:         key,
			Checksum:    sum,
			Size:        int64(len(f.Body)),
			RunID:       result.RunID,
			PublishedAt: p.now(),
		})
		if err != nil {
			return result, err
		}

		logger.Info().Str("key", f.Key).Int("size", len(f.Body)).Msg("Uploaded")
		result.Uploaded = append(result.Uploaded, f.Key)
	}

	logger.Info().
		Int("uploaded", len(result.Uploaded)).
		Int("skipped", len(result.Skipped)).
		Msg("Publish complete")

	return result, nil
}

// Checksum returns the hex SHA-256 of b.
func Checksum(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func (r *Result) String() string {
	return fmt.Sprintf("run %s: %d uploaded, %d unchanged", r.RunID, len(r.Uploaded), len(r.Skipped))
}
