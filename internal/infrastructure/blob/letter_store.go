// Package blob persists cover letters as JSON objects in Google Cloud
// Storage.
package blob

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/domain/entity"
	"github.com/jobdeck/jobdeck/pkg/helpers"
)

// LetterStore reads and writes letter blobs under a bucket prefix.
// Blob names are `<prefix><uuid>.json`.
type LetterStore struct {
	Client *storage.Client
	Bucket string
	Prefix string
}

func NewLetterStore(client *storage.Client, bucket, prefix string) *LetterStore {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &LetterStore{Client: client, Bucket: bucket, Prefix: prefix}
}

// Save writes the letter as a new JSON object and returns its blob name.
func (s *LetterStore) Save(ctx context.Context, letter *entity.Letter) (string, error) {
	data, err := json.Marshal(letter)
	if err != nil {
		return "", fmt.Errorf("marshal letter: %w", err)
	}
	blobName := fmt.Sprintf("%s%s.json", s.Prefix, uuid.NewString())
	if err := helpers.UploadObject(ctx, s.Client, s.Bucket, blobName, "application/json", data); err != nil {
		return "", fmt.Errorf("upload letter blob: %w", err)
	}
	return blobName, nil
}

// Load fetches and decodes the letter stored under blobName.
func (s *LetterStore) Load(ctx context.Context, blobName string) (*entity.Letter, error) {
	data, err := helpers.DownloadObject(ctx, s.Client, s.Bucket, blobName)
	if err != nil {
		return nil, fmt.Errorf("download letter blob %s: %w", blobName, err)
	}
	var letter entity.Letter
	if err := json.Unmarshal(data, &letter); err != nil {
		return nil, fmt.Errorf("decode letter blob %s: %w", blobName, err)
	}
	return &letter, nil
}

// Delete removes the blob. Deleting a missing blob is not an error, so a
// retried job cannot fail on cleanup.
func (s *LetterStore) Delete(ctx context.Context, blobName string) error {
	return helpers.DeleteObject(ctx, s.Client, s.Bucket, blobName)
}
