package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeHandler handles HTTP requests for point exchanges. Exchanges are
// final, so only creation is exposed.
type exchangeHandler struct {
	exchangeSvc portssvc.PointExchangeSvcFacade
}

func newExchangeHandler(exchangeSvc portssvc.PointExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeSvc: exchangeSvc}
}

func registerExchangeRoutes(rg *gin.RouterGroup, exchangeSvc portssvc.PointExchangeSvcFacade) {
	h := newExchangeHandler(exchangeSvc)
	rg.POST("/exchanges", h.exchangePoints)
}

func (h *exchangeHandler) exchangePoints(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	receipt, err := h.exchangeSvc.ExchangePoints(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Points exchanged via API", slog.String("transaction_number", receipt.TransactionNumber))
	c.JSON(http.StatusCreated, receipt)
}
