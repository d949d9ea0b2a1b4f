package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, maxMB int64, allowed []string) *Store {
	t.Helper()

	s, err := New(t.TempDir(), "http://localhost:8080/files", maxMB, allowed)
	require.NoError(t, err)

	return s
}

func TestStore_UploadAndPublicURL(t *testing.T) {
	s := newTestStore(t, 1, []string{"image/png"})

	url, err := s.Upload(BucketDocuments, "signatures/doc1/user1.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/documents/signatures/doc1/user1.png", url)

	data, err := os.ReadFile(filepath.Join(s.root, BucketDocuments, "signatures", "doc1", "user1.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestStore_Upload_RejectsUnsupportedType(t *testing.T) {
	s := newTestStore(t, 1, []string{"image/png", "application/pdf"})

	_, err := s.Upload(BucketDocuments, "a.exe", "application/x-msdownload", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestStore_Upload_TypeParameterIsIgnored(t *testing.T) {
	s := newTestStore(t, 1, []string{"image/png"})

	_, err := s.Upload(BucketDocuments, "a.png", "image/png; charset=binary", strings.NewReader("x"))
	assert.NoError(t, err)
}

func TestStore_Upload_RejectsOversize(t *testing.T) {
	s := newTestStore(t, 1, nil)

	big := strings.NewReader(strings.Repeat("a", 1<<20+1))
	_, err := s.Upload(BucketTasks, "proof.jpg", "image/jpeg", big)
	assert.ErrorIs(t, err, ErrTooLarge)

	// The partial write must not be left behind.
	_, statErr := os.Stat(filepath.Join(s.root, BucketTasks, "proof.jpg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_Upload_ExactlyAtLimitPasses(t *testing.T) {
	s := newTestStore(t, 1, nil)

	_, err := s.Upload(BucketTasks, "proof.jpg", "image/jpeg", strings.NewReader(strings.Repeat("a", 1<<20)))
	assert.NoError(t, err)
}

func TestStore_Upload_RejectsPathEscape(t *testing.T) {
	s := newTestStore(t, 1, nil)

	_, err := s.Upload(BucketDocuments, "../outside.txt", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = s.Upload(BucketDocuments, "", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestStore_Remove(t *testing.T) {
	s := newTestStore(t, 1, nil)

	_, err := s.Upload(BucketForum, "topic/att.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NoError(t, s.Remove(BucketForum, "topic/att.png"))
	assert.ErrorIs(t, s.Remove(BucketForum, "topic/att.png"), ErrObjectNotFound)
}
