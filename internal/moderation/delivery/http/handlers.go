package http

import (
	"github.com/gin-gonic/gin"

	"moderation-srv/pkg/response"
	"moderation-srv/pkg/scope"
)

// @Summary Scan content for risk
// @Description Score content on toxicity, spam, harassment and inappropriate dimensions and flag it when risky
// @Tags Moderation
// @Accept json
// @Produce json
// @Param body body scanContentReq true "Content to scan"
// @Success 200 {object} scanResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/moderation/scan [post]
func (h *handler) ScanContent(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processScanContentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ScanContent: processScanContentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ScanContent(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ScanContent: usecase ScanContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newScanResp(o))
}

// @Summary Flag content for review
// @Description Create a moderation flag for a piece of content
// @Tags Moderation
// @Accept json
// @Produce json
// @Param body body flagContentReq true "Flag request"
// @Success 200 {object} flagResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/moderation/flags [post]
func (h *handler) FlagContent(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processFlagContentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.FlagContent: processFlagContentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.FlagContent(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.FlagContent: usecase FlagContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newFlagResp(o.Flag))
}

// @Summary List flagged content
// @Description List moderation flags filtered by status, type, severity and content type
// @Tags Moderation
// @Produce json
// @Param status query string false "Flag status"
// @Param flag_type query string false "Flag type"
// @Param severity query string false "Severity"
// @Param content_type query string false "Content type"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listFlagsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/moderation/flags [get]
func (h *handler) GetFlaggedContent(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListFlagsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetFlaggedContent: processListFlagsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetFlaggedContent(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetFlaggedContent: usecase GetFlaggedContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListFlagsResp(o))
}

// @Summary Review a content flag
// @Description Apply an approve, reject or escalate decision with optional enforcement actions
// @Tags Moderation
// @Accept json
// @Produce json
// @Param flag_id path string true "Flag ID"
// @Param body body reviewFlagReq true "Review decision"
// @Success 200 {object} flagResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/moderation/flags/{flag_id}/review [post]
func (h *handler) ReviewFlag(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processReviewFlagRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ReviewFlag: processReviewFlagRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ReviewContentFlag(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ReviewFlag: usecase ReviewContentFlag failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newFlagResp(o.Flag))
}

// @Summary Get flag evidence
// @Description Generate presigned download URLs for a flag's evidence attachments
// @Tags Moderation
// @Produce json
// @Param flag_id path string true "Flag ID"
// @Success 200 {object} evidenceResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/moderation/flags/{flag_id}/evidence [get]
func (h *handler) GetFlagEvidence(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetEvidenceRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetFlagEvidence: processGetEvidenceRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetFlagEvidence(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetFlagEvidence: usecase GetFlagEvidence failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newEvidenceResp(o))
}

// @Summary Get the moderation queue
// @Description Return the partitioned queue of open flags aggregated from signal sources
// @Tags Moderation
// @Produce json
// @Success 200 {object} queueResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/moderation/queue [get]
func (h *handler) GetQueue(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetModerationQueue(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetQueue: usecase GetModerationQueue failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newQueueResp(o))
}

// @Summary Get moderation statistics
// @Description Return the cached statistics aggregate in fast approximate or exact mode
// @Tags Moderation
// @Produce json
// @Param exact query bool false "Use exact counting instead of the fast approximation"
// @Success 200 {object} statsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/moderation/stats [get]
func (h *handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetStatsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetStats: processGetStatsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetModerationStats(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetStats: usecase GetModerationStats failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStatsResp(o))
}
