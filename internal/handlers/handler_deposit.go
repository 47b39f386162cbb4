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

// depositHandler handles HTTP requests for waste deposits.
type depositHandler struct {
	depositSvc portssvc.DepositSvcFacade
}

func newDepositHandler(depositSvc portssvc.DepositSvcFacade) *depositHandler {
	return &depositHandler{depositSvc: depositSvc}
}

func registerDepositRoutes(rg *gin.RouterGroup, depositSvc portssvc.DepositSvcFacade) {
	h := newDepositHandler(depositSvc)
	deposits := rg.Group("/deposits")
	{
		deposits.POST("", h.postDeposit)
		deposits.GET("/:depositID", h.getDeposit)
		deposits.PUT("/:depositID", h.updateDeposit)
		deposits.DELETE("/:depositID", h.deleteDeposit)
	}
	rg.GET("/members/:memberID/deposits", h.listMemberDeposits)
}

func (h *depositHandler) postDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	receipt, err := h.depositSvc.PostDeposit(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Deposit posted via API", slog.String("deposit_number", receipt.DepositNumber))
	c.JSON(http.StatusCreated, receipt)
}

func (h *depositHandler) getDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deposit, err := h.depositSvc.GetDepositByID(c.Request.Context(), c.Param("depositID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, deposit)
}

func (h *depositHandler) listMemberDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	deposits, err := h.depositSvc.ListDepositsByMember(c.Request.Context(), c.Param("memberID"), limit, offset)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deposits": deposits})
}

func (h *depositHandler) updateDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	deposit, err := h.depositSvc.UpdateDeposit(c.Request.Context(), c.Param("depositID"), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, deposit)
}

func (h *depositHandler) deleteDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	if err := h.depositSvc.DeleteDeposit(c.Request.Context(), c.Param("depositID"), adminID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
