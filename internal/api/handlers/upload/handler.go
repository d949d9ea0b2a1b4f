package upload

import (
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/api/middleware"
	"github.com/coopstead/portal/internal/api/respond"
	"github.com/coopstead/portal/internal/storage"
)

// validBuckets are the buckets clients may upload into directly.
// Signature images are written by the signing flow, not through here.
var validBuckets = map[string]bool{
	storage.BucketDocuments: true,
	storage.BucketForum:     true,
	storage.BucketTasks:     true,
	storage.BucketAvatars:   true,
}

type Handler struct {
	store *storage.Store
}

func NewHandler(store *storage.Store) *Handler {
	return &Handler{store: store}
}

// Upload stores one multipart file in the named bucket under a
// per-user prefix and returns its public URL.
func (h *Handler) Upload(c *ginext.Context) {
	bucket := c.Param("bucket")
	if !validBuckets[bucket] {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("unknown bucket"))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing file field"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !h.store.TypeAllowed(contentType) {
		respond.Fail(c.Writer, http.StatusUnsupportedMediaType, fmt.Errorf("unsupported file type"))
		return
	}

	if header.Size > h.store.MaxBytes() {
		respond.Fail(c.Writer, http.StatusRequestEntityTooLarge, fmt.Errorf("file exceeds upload limit"))
		return
	}

	// Random prefix keeps concurrent uploads of the same filename apart.
	objectPath := fmt.Sprintf("%s/%s_%s", middleware.UserID(c), uuid.New(), path.Base(header.Filename))

	url, err := h.store.Upload(bucket, objectPath, contentType, file)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTooLarge):
			respond.Fail(c.Writer, http.StatusRequestEntityTooLarge, fmt.Errorf("file exceeds upload limit"))
		case errors.Is(err, storage.ErrUnsupportedType):
			respond.Fail(c.Writer, http.StatusUnsupportedMediaType, fmt.Errorf("unsupported file type"))
		default:
			zlog.Logger.Error().Err(err).Str("bucket", bucket).Msg("failed to store upload")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.Created(c.Writer, gin.H{
		"url":  url,
		"name": header.Filename,
		"size": header.Size,
		"type": contentType,
	})
}

// Delete removes an object the user uploaded. The object path is taken
// from ?path= and must sit under the caller's own prefix.
func (h *Handler) Delete(c *ginext.Context) {
	bucket := c.Param("bucket")
	if !validBuckets[bucket] {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("unknown bucket"))
		return
	}

	objectPath := c.Query("path")
	if objectPath == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing path"))
		return
	}

	prefix := middleware.UserID(c).String() + "/"
	if len(objectPath) <= len(prefix) || objectPath[:len(prefix)] != prefix {
		respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("object is not owned by caller"))
		return
	}

	if err := h.store.Remove(bucket, objectPath); err != nil {
		switch {
		case errors.Is(err, storage.ErrObjectNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("object not found"))
		case errors.Is(err, storage.ErrInvalidPath):
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid path"))
		default:
			zlog.Logger.Error().Err(err).Str("bucket", bucket).Msg("failed to remove object")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, "object deleted")
}
