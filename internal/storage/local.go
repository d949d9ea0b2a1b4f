package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	ErrTooLarge        = errors.New("file exceeds upload size limit")
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrInvalidPath     = errors.New("invalid object path")
	ErrObjectNotFound  = errors.New("object not found")
)

// Buckets the portal stores objects under.
const (
	BucketDocuments = "documents"
	BucketForum     = "forum-attachments"
	BucketTasks     = "task-proofs"
	BucketAvatars   = "avatars"
)

// Store keeps uploaded objects on the local filesystem under
// root/<bucket>/<object path> and serves them back as public URLs under
// a configured base.
type Store struct {
	root     string
	baseURL  string
	maxBytes int64
	allowed  map[string]struct{}
}

// New opens (creating if needed) the storage root.
func New(root, publicBaseURL string, maxUploadMB int64, allowedTypes []string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(t)] = struct{}{}
	}

	return &Store{
		root:     root,
		baseURL:  strings.TrimRight(publicBaseURL, "/"),
		maxBytes: maxUploadMB << 20,
		allowed:  allowed,
	}, nil
}

// Upload stores an object and returns its public URL. The reader is
// consumed up to the size limit; objects over the limit are discarded
// and ErrTooLarge is returned.
func (s *Store) Upload(bucket, objectPath, contentType string, r io.Reader) (string, error) {
	if !s.TypeAllowed(contentType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	dst, err := s.objectFile(bucket, objectPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create object file: %w", err)
	}
	defer f.Close()

	// Read one byte past the limit to tell "exactly at limit" from "over".
	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if n > s.maxBytes {
		os.Remove(dst)
		return "", ErrTooLarge
	}

	return s.PublicURL(bucket, objectPath), nil
}

// PublicURL returns the URL an object is served under.
func (s *Store) PublicURL(bucket, objectPath string) string {
	return s.baseURL + "/" + bucket + "/" + strings.TrimLeft(objectPath, "/")
}

// Remove deletes an object.
func (s *Store) Remove(bucket, objectPath string) error {
	dst, err := s.objectFile(bucket, objectPath)
	if err != nil {
		return err
	}

	if err := os.Remove(dst); err != nil {
		if os.IsNotExist(err) {
			return ErrObjectNotFound
		}

		return fmt.Errorf("failed to remove object: %w", err)
	}

	return nil
}

// TypeAllowed reports whether a content type passes the upload filter.
// An empty allow-list permits everything.
func (s *Store) TypeAllowed(contentType string) bool {
	if len(s.allowed) == 0 {
		return true
	}

	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	_, ok := s.allowed[mediaType]

	return ok
}

// MaxBytes returns the upload size limit in bytes.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// objectFile maps a bucket/path pair onto the filesystem, rejecting
// anything that would escape the storage root.
func (s *Store) objectFile(bucket, objectPath string) (string, error) {
	if bucket == "" || objectPath == "" {
		return "", ErrInvalidPath
	}

	clean := path.Clean("/" + objectPath)
	if clean == "/" || strings.Contains(objectPath, "..") {
		return "", ErrInvalidPath
	}

	return filepath.Join(s.root, bucket, filepath.FromSlash(clean)), nil
}
