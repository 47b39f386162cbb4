package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memberHandler handles HTTP requests for member accounts.
type memberHandler struct {
	memberSvc portssvc.MemberSvcFacade
}

func newMemberHandler(memberSvc portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberSvc: memberSvc}
}

func registerMemberRoutes(rg *gin.RouterGroup, memberSvc portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberSvc)
	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/:memberID", h.getMember)
		members.PUT("/:memberID", h.updateMember)
		members.DELETE("/:memberID", h.deactivateMember)
	}
}

func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	member, err := h.memberSvc.CreateMember(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Member created via API", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusCreated, member)
}

func (h *memberHandler) getMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	member, err := h.memberSvc.GetMemberByID(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	members, err := h.memberSvc.ListMembers(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *memberHandler) updateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	member, err := h.memberSvc.UpdateMember(c.Request.Context(), c.Param("memberID"), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *memberHandler) deactivateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	if err := h.memberSvc.DeactivateMember(c.Request.Context(), c.Param("memberID"), adminID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
