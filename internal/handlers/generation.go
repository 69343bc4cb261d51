package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/swipegen-backend/internal/jobs"
	"github.com/yungbote/swipegen-backend/internal/logger"
	"github.com/yungbote/swipegen-backend/internal/services"
	"github.com/yungbote/swipegen-backend/internal/types"
)

type GenerationHandler struct {
	log *logger.Logger
	svc services.GenerationService
}

func NewGenerationHandler(log *logger.Logger, svc services.GenerationService) *GenerationHandler {
	return &GenerationHandler{log: log.With("handler", "Generation"), svc: svc}
}

// CreateJob handles POST /api/generate-lp. It answers immediately with the
// job id; the pipeline runs in the background.
func (h *GenerationHandler) CreateJob(c *gin.Context) {
	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required data: swipeResults and preferences"})
		return
	}
	if len(req.SwipeResults) == 0 || req.Preferences == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required data: swipeResults and preferences"})
		return
	}

	jobID, err := h.svc.Enqueue(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("enqueue failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start generation"})
		return
	}

	c.JSON(http.StatusOK, types.GenerateResponse{
		JobID:  jobID,
		Status: "accepted",
	})
}

// jobID validates the query parameter before any store access.
func (h *GenerationHandler) jobID(c *gin.Context) (string, bool) {
	id := c.Query("jobId")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jobId parameter is required"})
		return "", false
	}
	if !jobs.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid jobId format"})
		return "", false
	}
	return id, true
}

// GetStatus handles GET /api/generation-status?jobId=...
func (h *GenerationHandler) GetStatus(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	job, err := h.svc.GetJob(c.Request.Context(), id)
	if errors.Is(err, jobs.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		h.log.Error("status lookup failed", "job_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch job status"})
		return
	}

	c.JSON(http.StatusOK, types.StatusResponse{
		Status:   job.Status,
		Progress: job.Progress,
		Error:    job.Error,
	})
}

// GetResult handles GET /api/get-result?jobId=... Only completed jobs yield
// a document; anything in flight answers 202 with the current progress.
func (h *GenerationHandler) GetResult(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	job, err := h.svc.GetJob(c.Request.Context(), id)
	if errors.Is(err, jobs.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		h.log.Error("result lookup failed", "job_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch job result"})
		return
	}

	if job.Status != types.StatusCompleted {
		c.JSON(http.StatusAccepted, gin.H{
			"error":    "generation not complete",
			"status":   string(job.Status),
			"progress": job.Progress,
		})
		return
	}
	if job.Result == nil {
		h.log.Error("completed job has no result", "job_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "job completed without a result"})
		return
	}

	c.JSON(http.StatusOK, types.ResultResponse{
		Code:         job.Result.HTML,
		TemplateName: job.Result.TemplateName,
		Variables:    job.Result.Variables,
	})
}
