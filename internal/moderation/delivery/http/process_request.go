package http

import (
	"github.com/gin-gonic/gin"

	"moderation-srv/internal/model"
	"moderation-srv/pkg/scope"
)

func (h *handler) processScanContentRequest(c *gin.Context) (scanContentReq, model.Scope, error) {
	var req scanContentReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processScanContentRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processFlagContentRequest(c *gin.Context) (flagContentReq, model.Scope, error) {
	var req flagContentReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processFlagContentRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processReviewFlagRequest(c *gin.Context) (reviewFlagReq, model.Scope, error) {
	var req reviewFlagReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processReviewFlagRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}
	req.FlagID = c.Param("flag_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processListFlagsRequest(c *gin.Context) (listFlagsReq, model.Scope, error) {
	var req listFlagsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processListFlagsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processGetEvidenceRequest(c *gin.Context) (getEvidenceReq, model.Scope, error) {
	req := getEvidenceReq{
		FlagID: c.Param("flag_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetStatsRequest(c *gin.Context) (getStatsReq, model.Scope, error) {
	var req getStatsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processGetStatsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
