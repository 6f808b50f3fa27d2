package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"phpcompat.dev/pkg/phpcompat/internal/domain"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// Response texts.
const (
	MsgInvalidTarget = "Invalid scan target specified."
	MsgInvalidBatch  = "Invalid scan ID or batch number."
	MsgOptionsSaved  = "Options saved successfully."
	MsgStopRequested = "Scan stop requested."
)

type handlers struct {
	deps Deps
}

type outputData struct {
	Output string `json:"output"`
}

type optionsSavedData struct {
	Message string    `json:"message"`
	Options m.Options `json:"options"`
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) preflight(c *gin.Context) {
	report := h.deps.Scanner.CheckSystemRequirements(c.Request.Context())
	if !report.Ready {
		respondError(c, http.StatusServiceUnavailable, report)
		return
	}

	respondOK(c, report)
}

func (h *handlers) targets(c *gin.Context) {
	list, err := h.deps.Catalog.List(c.Request.Context())
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, exceptionMessage(err))
		return
	}

	respondOK(c, list)
}

// resolveTarget binds type/slug and resolves them to a scan root. It writes
// the failure response itself and reports false when it did.
func (h *handlers) resolveTarget(c *gin.Context, req targetRequest) (m.Path, bool) {
	targetType := m.TargetType(req.Type)
	if !targetType.Valid() || req.Slug == "" {
		respondMessage(c, http.StatusBadRequest, MsgInvalidTarget)
		return "", false
	}

	path, err := h.deps.Catalog.Resolve(c.Request.Context(), targetType, req.Slug)
	if err != nil {
		slog.Debug("Target did not resolve", "type", req.Type, "slug", req.Slug, "error", err)
		respondMessage(c, http.StatusBadRequest, MsgInvalidTarget)

		return "", false
	}

	return path, true
}

func (h *handlers) scan(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBind(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, MsgInvalidTarget)
		return
	}

	path, ok := h.resolveTarget(c, req)
	if !ok {
		return
	}

	options, err := h.deps.Options.Load(c.Request.Context())
	if err != nil {
		options = m.DefaultOptions()
	}

	output := h.deps.Scanner.Run(c.Request.Context(), path, options.PHPVersion)
	respondOK(c, outputData{Output: output})
}

func (h *handlers) batchScan(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBind(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, MsgInvalidTarget)
		return
	}

	path, ok := h.resolveTarget(c, req)
	if !ok {
		return
	}

	report, err := h.deps.Scanner.ScanInBatches(c.Request.Context(), path)
	if errors.Is(err, domain.ErrInvalidTarget) {
		respondMessage(c, http.StatusBadRequest, MsgInvalidTarget)
		return
	}

	if err != nil {
		respondMessage(c, http.StatusInternalServerError, exceptionMessage(err))
		return
	}

	respondOK(c, report)
}

func (h *handlers) progress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBind(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, MsgInvalidTarget)
		return
	}

	path, ok := h.resolveTarget(c, req.targetRequest)
	if !ok {
		return
	}

	options, err := h.deps.Options.Load(c.Request.Context())
	if err != nil {
		options = m.DefaultOptions()
	}

	batchSize := int(req.BatchSize)
	if batchSize < 1 {
		batchSize = options.BatchSize
	}

	if req.SkipVendor != nil {
		options.SkipVendor = bool(*req.SkipVendor)
	}

	if err := h.deps.Scanner.ResetStop(c.Request.Context()); err != nil {
		slog.Warn("Failed to reset stop token", "error", err)
	}

	info, err := h.deps.Scanner.GetScanProgress(c.Request.Context(), path, batchSize, options.Exclusions())
	if errors.Is(err, domain.ErrInvalidTarget) {
		respondMessage(c, http.StatusBadRequest, MsgInvalidTarget)
		return
	}

	if err != nil {
		respondMessage(c, http.StatusInternalServerError, exceptionMessage(err))
		return
	}

	respondOK(c, info)
}

func (h *handlers) processBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBind(&req); err != nil || req.ScanID == "" || req.BatchNumber < 1 {
		respondMessage(c, http.StatusBadRequest, MsgInvalidBatch)
		return
	}

	result, err := h.deps.Scanner.ProcessBatch(c.Request.Context(), req.ScanID, int(req.BatchNumber), "")
	if err != nil && result.Output == "" {
		respondMessage(c, http.StatusInternalServerError, exceptionMessage(err))
		return
	}

	// A linter that failed to run still yields the batch, with the reason as
	// its output, so the client can move on.
	if err != nil {
		slog.Warn("Batch linter failed", "scan", req.ScanID, "batch", req.BatchNumber, "error", err)
	}

	respondOK(c, result)
}

func (h *handlers) stop(c *gin.Context) {
	var req stopRequest
	_ = c.ShouldBind(&req)

	if err := h.deps.Scanner.RequestStop(c.Request.Context(), req.ScanID); err != nil {
		respondMessage(c, http.StatusInternalServerError, exceptionMessage(err))
		return
	}

	respondOK(c, messageData{Message: MsgStopRequested})
}

func (h *handlers) loadOptions(c *gin.Context) {
	options, err := h.deps.Options.Load(c.Request.Context())
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, exceptionMessage(err))
		return
	}

	respondOK(c, options)
}

func (h *handlers) saveOptions(c *gin.Context) {
	var req optionsRequest
	if err := c.ShouldBind(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, exceptionMessage(err))
		return
	}

	saved, err := h.deps.Options.Save(c.Request.Context(), req.toOptions())
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, exceptionMessage(err))
		return
	}

	respondOK(c, optionsSavedData{Message: MsgOptionsSaved, Options: saved})
}
