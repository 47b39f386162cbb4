package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// withdrawalHandler handles HTTP requests for balance withdrawals. The path
// parameter is the treasury record's ID, since that is the record a
// withdrawal lives in.
type withdrawalHandler struct {
	withdrawalSvc portssvc.WithdrawalSvcFacade
}

func newWithdrawalHandler(withdrawalSvc portssvc.WithdrawalSvcFacade) *withdrawalHandler {
	return &withdrawalHandler{withdrawalSvc: withdrawalSvc}
}

func registerWithdrawalRoutes(rg *gin.RouterGroup, withdrawalSvc portssvc.WithdrawalSvcFacade) {
	h := newWithdrawalHandler(withdrawalSvc)
	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.POST("", h.postWithdrawal)
		withdrawals.PUT("/:treasuryID", h.updateWithdrawal)
		withdrawals.DELETE("/:treasuryID", h.deleteWithdrawal)
	}
}

func (h *withdrawalHandler) postWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	receipt, err := h.withdrawalSvc.PostWithdrawal(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Withdrawal posted via API", slog.String("transaction_number", receipt.TransactionNumber))
	c.JSON(http.StatusCreated, receipt)
}

func (h *withdrawalHandler) updateWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	receipt, err := h.withdrawalSvc.UpdateWithdrawal(c.Request.Context(), c.Param("treasuryID"), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *withdrawalHandler) deleteWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	if err := h.withdrawalSvc.DeleteWithdrawal(c.Request.Context(), c.Param("treasuryID"), adminID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
