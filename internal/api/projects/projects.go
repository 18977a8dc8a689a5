// Package projects implements the HTTP handlers for the portfolio project
// resource: public listing and retrieval plus authenticated create, update,
// and delete.
package projects

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms/portfolio-cms/internal/db/repositories"
	"github.com/portfolio-cms/portfolio-cms/internal/telemetry"
	"github.com/portfolio-cms/portfolio-cms/internal/validation"
)

// Handlers handles project endpoints
type Handlers struct {
	repo *repositories.ProjectRepository
}

// NewHandlers creates a new Handlers instance
func NewHandlers(repo *repositories.ProjectRepository) *Handlers {
	return &Handlers{repo: repo}
}

// parseProjectID extracts and checks the :id path parameter. A non-numeric or
// non-positive ID is a client error, reported before any repository work.
func parseProjectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid project ID",
		})
		return 0, false
	}
	return id, true
}

// @Summary      List projects
// @Description  Get all projects ordered by display order, newest first within equal order.
// @Tags         Projects
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success: true, data: []models.Project, message"
// @Failure      500  {object}  map[string]interface{}  "success: false, error"
// @Router       /api/projects [get]
// ListHandler returns every project
// GET /api/projects
func (h *Handlers) ListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := h.repo.FindAll(c.Request.Context())
		if err != nil {
			slog.Error("failed to list projects", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to retrieve projects",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    projects,
			"message": "Projects retrieved successfully",
		})
	}
}

// @Summary      List featured projects
// @Description  Get projects flagged as featured that are completed or actively maintained.
// @Tags         Projects
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success: true, data: []models.Project"
// @Failure      500  {object}  map[string]interface{}  "success: false, error"
// @Router       /api/projects/featured [get]
// FeaturedHandler returns the featured subset of projects
// GET /api/projects/featured
func (h *Handlers) FeaturedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := h.repo.FindFeatured(c.Request.Context())
		if err != nil {
			slog.Error("failed to list featured projects", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to retrieve featured projects",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    projects,
		})
	}
}

// @Summary      Get project
// @Description  Get a single project by numeric ID.
// @Tags         Projects
// @Produce      json
// @Param        id  path  int  true  "Project ID"
// @Success      200  {object}  map[string]interface{}  "success: true, data: models.Project"
// @Failure      400  {object}  map[string]interface{}  "Invalid project ID"
// @Failure      404  {object}  map[string]interface{}  "Project not found"
// @Failure      500  {object}  map[string]interface{}  "success: false, error"
// @Router       /api/projects/{id} [get]
// GetHandler retrieves a single project
// GET /api/projects/:id
func (h *Handlers) GetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProjectID(c)
		if !ok {
			return
		}

		project, err := h.repo.FindByID(c.Request.Context(), id)
		if err != nil {
			slog.Error("failed to get project", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to retrieve project",
			})
			return
		}
		if project == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Project not found",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    project,
		})
	}
}

// @Summary      Create project
// @Description  Create a new project. Optional fields default (status in_development, not featured, display order 0).
// @Tags         Projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  validation.ProjectPayload  true  "Project creation request"
// @Success      201  {object}  map[string]interface{}  "success: true, data: models.Project, message"
// @Failure      400  {object}  map[string]interface{}  "error: Validation failed, details: []validation.FieldError"
// @Failure      401  {object}  map[string]interface{}  "Unauthorized"
// @Failure      500  {object}  map[string]interface{}  "success: false, error"
// @Router       /api/projects [post]
// CreateHandler creates a new project
// POST /api/projects
func (h *Handlers) CreateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload validation.ProjectPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid request body",
			})
			return
		}

		input, errs := validation.ValidateCreateProject(&payload)
		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": errs,
			})
			return
		}

		project, err := h.repo.Create(c.Request.Context(), input)
		if err != nil {
			slog.Error("failed to create project", "name", input.Name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to create project",
			})
			return
		}
		telemetry.ProjectMutationsTotal.WithLabelValues("create").Inc()

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    project,
			"message": "Project created successfully",
		})
	}
}

// @Summary      Update project
// @Description  Partially update a project. Only fields present in the body are written; an empty body is a no-op read.
// @Tags         Projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "Project ID"
// @Param        body  body  validation.ProjectPayload  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}  "success: true, data: models.Project, message"
// @Failure      400  {object}  map[string]interface{}  "Invalid ID or validation failure"
// @Failure      401  {object}  map[string]interface{}  "Unauthorized"
// @Failure      404  {object}  map[string]interface{}  "Project not found"
// @Failure      500  {object}  map[string]interface{}  "success: false, error"
// @Router       /api/projects/{id} [patch]
// UpdateHandler applies a partial update to a project
// PATCH /api/projects/:id
func (h *Handlers) UpdateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProjectID(c)
		if !ok {
			return
		}

		var payload validation.ProjectPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid request body",
			})
			return
		}

		patch, errs := validation.ValidateUpdateProject(&payload)
		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": errs,
			})
			return
		}

		project, err := h.repo.Update(c.Request.Context(), id, patch)
		if err != nil {
			slog.Error("failed to update project", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to update project",
			})
			return
		}
		if project == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Project not found",
			})
			return
		}
		if !patch.IsEmpty() {
			telemetry.ProjectMutationsTotal.WithLabelValues("update").Inc()
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    project,
			"message": "Project updated successfully",
		})
	}
}

// @Summary      Delete project
// @Description  Delete a project by ID.
// @Tags         Projects
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Project ID"
// @Success      200  {object}  map[string]interface{}  "success: true, message"
// @Failure      400  {object}  map[string]interface{}  "Invalid project ID"
// @Failure      401  {object}  map[string]interface{}  "Unauthorized"
// @Failure      404  {object}  map[string]interface{}  "Project not found"
// @Failure      500  {object}  map[string]interface{}  "success: false, error"
// @Router       /api/projects/{id} [delete]
// DeleteHandler removes a project
// DELETE /api/projects/:id
func (h *Handlers) DeleteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProjectID(c)
		if !ok {
			return
		}

		deleted, err := h.repo.Delete(c.Request.Context(), id)
		if err != nil {
			slog.Error("failed to delete project", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to delete project",
			})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Project not found",
			})
			return
		}
		telemetry.ProjectMutationsTotal.WithLabelValues("delete").Inc()

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Project deleted successfully",
		})
	}
}
