package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vikass-pal/campusconnect/internal/app/models/dto"
	"github.com/vikass-pal/campusconnect/internal/app/services"
	"github.com/vikass-pal/campusconnect/internal/middleware"
	"github.com/vikass-pal/campusconnect/internal/pkg/helpers"
)

// ResourceController handles study resource operations
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

// GetAllResources handles retrieving resources with optional filtering
// @Summary List resources
// @Description Retrieves resources filtered by text query, type and tags
// @Tags resources
// @Produce json
// @Param query query string false "Text query matched against title, description and tags"
// @Param type query string false "Resource type (pdf, link, notes)"
// @Param tags query string false "Comma-separated tag filter, entity kept when any tag matches"
// @Param sortBy query string false "Sort order (newest, oldest, popular)"
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 10)"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceListResponse} "Resources"
// @Router /resources [get]
func (c *ResourceController) GetAllResources(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := &dto.ResourceFilterRequest{
		Query:    ctx.Query("query"),
		Type:     ctx.Query("type"),
		SortBy:   ctx.Query("sortBy"),
		Page:     page,
		PageSize: size,
	}
	if tags := ctx.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				filter.Tags = append(filter.Tags, trimmed)
			}
		}
	}

	response, err := c.resourceService.GetAllResources(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetResourceByID handles retrieving a single resource
// @Summary Get a resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=models.Resource} "Resource"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [get]
func (c *ResourceController) GetResourceByID(ctx *gin.Context) {
	resource, err := c.resourceService.GetResourceByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resource))
}

// CreateResource handles a new resource submission
// @Summary Create a resource
// @Description Accepts a multipart form; pdf resources carry a file, link resources a url, notes free text
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param type formData string true "Resource type (pdf, link, notes)"
// @Param tags formData string false "Comma-separated tags"
// @Param url formData string false "URL for link resources"
// @Param content formData string false "Free text for notes resources"
// @Param file formData file false "File for pdf resources"
// @Success 201 {object} dto.APIResponse{data=models.Resource} "Resource created"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Optional; the service enforces presence for pdf resources.
	file, err := ctx.FormFile("file")
	if err != nil {
		file = nil
	}

	resource, err := c.resourceService.CreateResource(ctx, &req, file, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resource))
}

// DeleteResource handles removing a resource and its comments
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.APIResponse "Resource deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.resourceService.DeleteResource(ctx, ctx.Param("id"), userID, middleware.IsAdmin(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Resource deleted"))
}

// ToggleLike handles flipping the caller's like on a resource
// @Summary Toggle like
// @Description Adds the caller to the likes set, or removes them when already present
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=models.Resource} "Updated resource"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id}/like [post]
func (c *ResourceController) ToggleLike(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	resource, err := c.resourceService.ToggleLike(ctx, ctx.Param("id"), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resource))
}

// AddComment handles appending a comment to a resource
// @Summary Comment on a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.APIResponse{data=models.Comment} "Comment created"
// @Failure 400 {object} dto.ErrorResponse "Empty content"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id}/comments [post]
func (c *ResourceController) AddComment(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	comment, err := c.resourceService.AddComment(ctx, ctx.Param("id"), userID, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// DeleteComment handles removing a comment from a resource
// @Summary Delete a comment
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} dto.APIResponse "Comment deleted"
// @Failure 404 {object} dto.ErrorResponse "Resource or comment not found"
// @Router /resources/{id}/comments/{commentId} [delete]
func (c *ResourceController) DeleteComment(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.resourceService.DeleteComment(ctx, ctx.Param("id"), ctx.Param("commentId"), userID, middleware.IsAdmin(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Comment deleted"))
}
