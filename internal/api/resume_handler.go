package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"devcanvas/internal/api/middleware"
	"devcanvas/internal/resume"
	"devcanvas/internal/storage"
)

// uploadPrefix is the bucket prefix all archived uploads live under; the
// upload-management endpoints refuse keys outside it.
const uploadPrefix = "resume-uploads/"

// archiver is the archival surface the resume handler needs; satisfied by
// storage.Client.
type archiver interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*minio.UploadInfo, error)
	GeneratePresignedURL(ctx context.Context, objectKey string, duration time.Duration) (string, error)
	ListObjects(ctx context.Context, prefix string, limit int) ([]storage.ObjectMeta, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// ResumeHandler handles resume uploads and extraction.
type ResumeHandler struct {
	parser    *resume.Parser
	storage   archiver
	clamdAddr string
}

// NewResumeHandler constructs a ResumeHandler. A nil parser yields 503 on
// upload; a nil storage skips archival and yields 503 on the upload
// management endpoints; an empty clamdAddr skips scanning.
func NewResumeHandler(parser *resume.Parser, storage archiver, clamdAddr string) *ResumeHandler {
	return &ResumeHandler{parser: parser, storage: storage, clamdAddr: clamdAddr}
}

// UploadResume validates, optionally scans and archives the uploaded file,
// then extracts structured data. Extraction never hard-fails for a valid
// upload; total failure returns the synthetic fallback plus a warning.
func (h *ResumeHandler) UploadResume(c *gin.Context) {
	logger := middleware.LoggerFromContext(c)

	if h.parser == nil {
		ServiceUnavailable(c, "resume parsing is not configured")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "No file uploaded")
		return
	}

	if err := resume.ValidateFile(file.Filename, file.Size); err != nil {
		BadRequest(c, err.Error())
		return
	}

	reader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	data, err := io.ReadAll(reader)
	reader.Close()
	if err != nil {
		Internal(c, "failed to read file")
		return
	}

	if h.clamdAddr != "" {
		clean, err := h.scan(data)
		if err != nil {
			logger.Error("scan file", slog.String("error", err.Error()))
			Internal(c, "failed to scan file")
			return
		}
		if !clean {
			BadRequest(c, "malicious file detected")
			return
		}
	}

	h.archive(c, logger, file.Filename, data)

	parsed, fallbackUsed := h.parser.Parse(c.Request.Context(), data, file.Filename)

	resp := gin.H{"success": true, "data": parsed}
	if fallbackUsed {
		resp["warning"] = "Resume parsing encountered an issue. Default data provided."
	}
	c.JSON(http.StatusOK, resp)
}

// GetUploadInfo describes the upload contract for clients.
func (h *ResumeHandler) GetUploadInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"supported_formats": []string{"pdf", "docx"},
		"max_file_size":     "5MB",
		"fields_extracted": []string{
			"name", "title", "summary", "experience", "education", "skills", "contact",
		},
	})
}

// ListUploads lists archived uploads, newest first, each with a short-lived
// download link.
func (h *ResumeHandler) ListUploads(c *gin.Context) {
	logger := middleware.LoggerFromContext(c)

	if h.storage == nil {
		ServiceUnavailable(c, "archive storage is not configured")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "60"))
	if err != nil || limit <= 0 {
		limit = 60
	}
	if limit > 200 {
		limit = 200
	}

	objects, err := h.storage.ListObjects(c.Request.Context(), uploadPrefix, limit)
	if err != nil {
		logger.Error("list uploads", slog.String("error", err.Error()))
		Internal(c, "failed to list uploads")
		return
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].LastModified.After(objects[j].LastModified)
	})

	items := make([]gin.H, 0, len(objects))
	for _, obj := range objects {
		url, err := h.storage.GeneratePresignedURL(c.Request.Context(), obj.Key, 10*time.Minute)
		if err != nil {
			logger.Error("generate upload url", slog.String("objectKey", obj.Key), slog.String("error", err.Error()))
			continue
		}
		items = append(items, gin.H{
			"objectKey":    obj.Key,
			"url":          url,
			"size":         obj.Size,
			"lastModified": obj.LastModified,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetUploadURL returns a temporary presigned link for one archived upload.
func (h *ResumeHandler) GetUploadURL(c *gin.Context) {
	if h.storage == nil {
		ServiceUnavailable(c, "archive storage is not configured")
		return
	}

	objectKey := c.Query("key")
	if objectKey == "" {
		BadRequest(c, "missing key")
		return
	}
	if !strings.HasPrefix(objectKey, uploadPrefix) {
		Forbidden(c, "access denied")
		return
	}

	signedURL, err := h.storage.GeneratePresignedURL(c.Request.Context(), objectKey, 15*time.Minute)
	if err != nil {
		middleware.LoggerFromContext(c).Error("generate presigned url", slog.String("error", err.Error()))
		Internal(c, "failed to generate url")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

// DeleteUpload removes one archived upload. Deleting an already-gone object
// succeeds.
func (h *ResumeHandler) DeleteUpload(c *gin.Context) {
	if h.storage == nil {
		ServiceUnavailable(c, "archive storage is not configured")
		return
	}

	objectKey := c.Query("key")
	if objectKey == "" {
		BadRequest(c, "missing key")
		return
	}
	if !strings.HasPrefix(objectKey, uploadPrefix) {
		Forbidden(c, "access denied")
		return
	}

	if err := h.storage.DeleteObject(c.Request.Context(), objectKey); err != nil {
		middleware.LoggerFromContext(c).Error("delete upload", slog.String("objectKey", objectKey), slog.String("error", err.Error()))
		Internal(c, "failed to delete upload")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": objectKey})
}

func (h *ResumeHandler) scan(data []byte) (bool, error) {
	clamdClient := clamd.NewClamd(h.clamdAddr)

	abortChan := make(chan bool)
	defer close(abortChan)

	scanChan, err := clamdClient.ScanStream(bytes.NewReader(data), abortChan)
	if err != nil {
		return false, err
	}

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return false, nil
		}
	}
	return true, nil
}

// archive stores the raw upload best-effort; failures are logged, never
// surfaced.
func (h *ResumeHandler) archive(c *gin.Context, logger *slog.Logger, fileName string, data []byte) {
	if h.storage == nil {
		return
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	objectKey := uploadPrefix + uuid.NewString() + ext
	contentType := contentTypeForExt(ext)

	if _, err := h.storage.UploadFile(c.Request.Context(), objectKey, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		logger.Warn("archive resume upload", slog.String("objectKey", objectKey), slog.String("error", err.Error()))
	}
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}
