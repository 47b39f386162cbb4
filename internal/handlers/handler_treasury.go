package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateQueryLayout = "2006-01-02"

// treasuryHandler handles HTTP requests for treasury records.
type treasuryHandler struct {
	treasurySvc portssvc.TreasurySvcFacade
}

func newTreasuryHandler(treasurySvc portssvc.TreasurySvcFacade) *treasuryHandler {
	return &treasuryHandler{treasurySvc: treasurySvc}
}

func registerTreasuryRoutes(rg *gin.RouterGroup, treasurySvc portssvc.TreasurySvcFacade) {
	h := newTreasuryHandler(treasurySvc)
	treasuries := rg.Group("/treasuries")
	{
		treasuries.POST("", h.postTreasury)
		treasuries.GET("", h.listTreasuries)
		treasuries.GET("/:treasuryID", h.getTreasury)
		treasuries.PUT("/:treasuryID", h.updateTreasury)
		treasuries.DELETE("/:treasuryID", h.deleteTreasury)
	}
}

// parseDateRange reads optional from/to date query parameters. Zero times
// mean no bound.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	var from, to time.Time
	var err error
	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse(dateQueryLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date, expected YYYY-MM-DD"})
			return from, to, false
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse(dateQueryLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date, expected YYYY-MM-DD"})
			return from, to, false
		}
	}
	return from, to, true
}

func (h *treasuryHandler) postTreasury(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTreasuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	treasury, err := h.treasurySvc.PostTreasury(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Treasury record posted via API", slog.String("treasury_number", treasury.TreasuryNumber))
	c.JSON(http.StatusCreated, treasury)
}

func (h *treasuryHandler) getTreasury(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	treasury, err := h.treasurySvc.GetTreasuryByID(c.Request.Context(), c.Param("treasuryID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, treasury)
}

func (h *treasuryHandler) listTreasuries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	treasuries, err := h.treasurySvc.ListTreasuries(c.Request.Context(), from, to, limit, offset)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"treasuries": treasuries})
}

func (h *treasuryHandler) updateTreasury(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTreasuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	treasury, err := h.treasurySvc.UpdateTreasury(c.Request.Context(), c.Param("treasuryID"), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, treasury)
}

func (h *treasuryHandler) deleteTreasury(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	if err := h.treasurySvc.DeleteTreasury(c.Request.Context(), c.Param("treasuryID"), adminID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
