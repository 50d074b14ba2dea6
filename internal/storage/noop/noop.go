// Package noop provides object storage that discards everything. It is the
// default when no archive bucket is configured.
package noop

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"

	"smartcarbon/internal/port"
)

type storage struct{}

// NewStorage returns an ObjectStorage that drains uploads without keeping them.
func NewStorage() port.ObjectStorage {
	return &storage{}
}

func (s *storage) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	n, err := io.Copy(io.Discard, input.Body)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("key", input.Key).Int64("bytes", n).Msg("noop storage: upload discarded")
	return &port.UploadOutput{Location: "noop://" + input.Bucket + "/" + input.Key}, nil
}

// List reports nothing, since nothing was kept.
func (s *storage) List(_ context.Context, _, _ string) ([]string, error) {
	return nil, nil
}

func (s *storage) Delete(_ context.Context, bucket, key string) error {
	log.Debug().Str("bucket", bucket).Str("key", key).Msg("noop storage: delete ignored")
	return nil
}
