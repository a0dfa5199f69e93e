package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidURI     = errors.New("invalid archive URI")
	ErrObjectNotFound = errors.New("archived object not found")
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Archive keeps a copy of every uploaded statement
type Archive interface {
	Store(ctx context.Context, key string, content []byte, contentType string) (string, error)
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

// ObjectKey builds the object path for an upload:
// <prefix>/<profile id>/<yyyy/mm/dd>/<unix nanos>-<file name>
func ObjectKey(prefix string, profileID uuid.UUID, fileName string, at time.Time) string {
	name := unsafeNameChars.ReplaceAllString(path.Base(fileName), "_")
	if name == "" || name == "." || name == "_" {
		name = "statement.txt"
	}

	at = at.UTC()
	return path.Join(
		strings.Trim(prefix, "/"),
		profileID.String(),
		at.Format("2006/01/02"),
		fmt.Sprintf("%d-%s", at.UnixNano(), name),
	)
}

// ParseURI splits gs://bucket/object into its parts
func ParseURI(uri string) (string, string, error) {
	if !strings.HasPrefix(uri, "gs://") {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, "gs://"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return parts[0], parts[1], nil
}

// NoopArchive discards uploads. It is used when no bucket is configured.
type NoopArchive struct{}

func (NoopArchive) Store(context.Context, string, []byte, string) (string, error) {
	return "", nil
}

func (NoopArchive) Fetch(_ context.Context, uri string) ([]byte, error) {
	return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, uri)
}

// MemoryArchive keeps objects in process memory under a fake bucket name
type MemoryArchive struct {
	mu      sync.RWMutex
	bucket  string
	objects map[string][]byte
}

// NewMemoryArchive creates an empty in-memory archive
func NewMemoryArchive(bucket string) *MemoryArchive {
	return &MemoryArchive{bucket: bucket, objects: make(map[string][]byte)}
}

func (m *MemoryArchive) Store(_ context.Context, key string, content []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(content))
	copy(stored, content)
	m.objects[key] = stored

	return fmt.Sprintf("gs://%s/%s", m.bucket, key), nil
}

func (m *MemoryArchive) Fetch(_ context.Context, uri string) ([]byte, error) {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.objects[key]
	if !ok || bucket != m.bucket {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, uri)
	}
	return content, nil
}

// Len returns the number of stored objects
func (m *MemoryArchive) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
