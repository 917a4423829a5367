package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) handleReadyz(c *gin.Context) {
	if s.dbHealthy == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	if err := s.dbHealthy(c.Request.Context()); err != nil {
		s.logger.Warn("readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// processingRequest is the body of POST /api/run-processing: one PDF object
// name to run through the pipeline.
type processingRequest struct {
	Filename string `json:"filename"`
}

func (s *Server) handleRunProcessing(c *gin.Context) {
	if s.runner == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "processing not configured"})
		return
	}

	var req processingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename is required"})
		return
	}
	user := c.GetString(authUserKey)
	start := time.Now()

	jobID, err := s.runner.ProcessDocument(c.Request.Context(), req.Filename)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		s.logger.Error("processing failed",
			zap.String("filename", req.Filename),
			zap.String("job_id", jobID.String()),
			zap.Int64("elapsed_ms", elapsed),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	s.logger.Info("processing complete",
		zap.String("filename", req.Filename),
		zap.String("job_id", jobID.String()),
		zap.Int64("elapsed_ms", elapsed),
	)
	c.JSON(http.StatusOK, gin.H{
		"status":   "Processing completed",
		"message":  "File " + req.Filename + " processed successfully.",
		"user":     user,
		"filename": req.Filename,
	})
}

func (s *Server) handleExportXLSX(c *gin.Context) {
	if s.exporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export not configured"})
		return
	}

	from, ok := parseDateParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to")
	if !ok {
		return
	}

	data, err := s.exporter.ExportWorkbookXLSX(c.Request.Context(), from, to)
	if err != nil {
		s.logger.Error("xlsx export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="po-extractions.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
