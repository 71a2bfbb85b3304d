package analysis

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/extract"
	"resume-coach/internal/shared/server/respond"
	"resume-coach/internal/shared/storage/scratch"
)

const (
	maxUploadBytes = 10 << 20 // 10MB

	// Extracted text shorter than this (after trimming) is rejected before
	// any completion call is made.
	minResumeChars = 50

	previewChars = 500
)

// Handler wires the upload-resume endpoint to the service.
type Handler struct {
	Svc     *Service
	Scratch *scratch.Store
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, store *scratch.Store) *Handler {
	return &Handler{Svc: svc, Scratch: store}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload-resume", h.upload)
}

type uploadResponse struct {
	Success    bool           `json:"success"`
	Filename   string         `json:"filename"`
	Analysis   ResumeAnalysis `json:"analysis"`
	ResumeText string         `json:"resume_text"`
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	if !extract.Supported(fileHeader.Filename) {
		respond.Error(c, http.StatusBadRequest, "validation_error",
			fmt.Sprintf("File type not supported. Please upload %s", strings.Join(extract.AllowedExtensions, ", ")), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	path, err := h.Scratch.Save(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to store upload", nil)
		return
	}
	defer h.Scratch.Remove(path)

	resumeText, err := extract.FromFile(path, fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal",
			fmt.Sprintf("Error processing resume: %v", err), nil)
		return
	}

	if utf8.RuneCountInString(strings.TrimSpace(resumeText)) < minResumeChars {
		respond.Error(c, http.StatusBadRequest, "validation_error",
			"Resume appears to be empty or too short", nil)
		return
	}

	result := h.Svc.Analyze(c.Request.Context(), resumeText)

	respond.OK(c, uploadResponse{
		Success:    true,
		Filename:   fileHeader.Filename,
		Analysis:   result,
		ResumeText: preview(resumeText),
	})
}

// preview truncates text to the first previewChars characters with a
// trailing ellipsis marker.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewChars {
		runes = runes[:previewChars]
	}
	return string(runes) + "..."
}
