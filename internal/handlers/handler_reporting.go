package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the read-side query routes.
type reportingHandler struct {
	reportingSvc portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingSvc portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingSvc: reportingSvc}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingSvc portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingSvc)
	rg.GET("/members/:memberID/balance", h.getMemberBalance)
	rg.GET("/members/:memberID/ledger", h.listMemberLedger)
	rg.GET("/reports/ledger-summary", h.summarizeLedger)
}

func (h *reportingHandler) getMemberBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, err := h.reportingSvc.GetMemberBalance(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *reportingHandler) listMemberLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := dto.ListLedgerParams{Limit: limit}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	history, err := h.reportingSvc.ListMemberLedger(c.Request.Context(), c.Param("memberID"), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *reportingHandler) summarizeLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	summary, err := h.reportingSvc.SummarizeLedger(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
