package handlers

import (
	"net/http"

	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests for waste categories.
type categoryHandler struct {
	categorySvc portssvc.CategorySvcFacade
}

func newCategoryHandler(categorySvc portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categorySvc: categorySvc}
}

func registerCategoryRoutes(rg *gin.RouterGroup, categorySvc portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categorySvc)
	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:categoryID", h.getCategory)
		categories.PUT("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deactivateCategory)
	}
}

func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	category, err := h.categorySvc.CreateCategory(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	category, err := h.categorySvc.GetCategoryByID(c.Request.Context(), c.Param("categoryID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeInactive := c.Query("includeInactive") == "true"
	categories, err := h.categorySvc.ListCategories(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorFields(err))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	category, err := h.categorySvc.UpdateCategory(c.Request.Context(), c.Param("categoryID"), req, adminID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *categoryHandler) deactivateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin identity"})
		return
	}

	if err := h.categorySvc.DeactivateCategory(c.Request.Context(), c.Param("categoryID"), adminID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
