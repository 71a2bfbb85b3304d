package interviews

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/extract"
	"resume-coach/internal/shared/server/respond"
	"resume-coach/internal/shared/storage/scratch"
)

const maxUploadBytes = 10 << 20 // 10MB

// Handler wires the interview endpoints to the service.
type Handler struct {
	Svc     *Service
	Scratch *scratch.Store
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, store *scratch.Store) *Handler {
	return &Handler{Svc: svc, Scratch: store}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-questions", h.generateQuestions)
	rg.POST("/evaluate-answer", h.evaluateAnswer)
}

type questionsResponse struct {
	Success   bool        `json:"success"`
	Questions QuestionSet `json:"questions"`
}

func (h *Handler) generateQuestions(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
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
			fmt.Sprintf("Error generating questions: %v", err), nil)
		return
	}

	questions := h.Svc.GenerateQuestions(c.Request.Context(), resumeText)

	respond.OK(c, questionsResponse{
		Success:   true,
		Questions: questions,
	})
}

type evaluateRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type evaluateResponse struct {
	Success    bool       `json:"success"`
	Evaluation Evaluation `json:"evaluation"`
}

func (h *Handler) evaluateAnswer(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question and answer are required", nil)
		return
	}

	result := h.Svc.EvaluateAnswer(c.Request.Context(), req.Question, req.Answer)

	respond.OK(c, evaluateResponse{
		Success:    true,
		Evaluation: result,
	})
}
