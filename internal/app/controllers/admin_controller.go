package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// AdminController handles admin profile operations
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// ListAdmins retrieves a page of admins
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort query string false "Sort field"
// @Param order query string false "Sort order (asc|desc)"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Admins retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /admins [get]
func (c *AdminController) ListAdmins(ctx *gin.Context) {
	params, ok := bindListQuery(ctx)
	if !ok {
		return
	}

	admins, total, err := c.adminService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listEnvelope(admins, total, params.Page, params.Limit)))
}

// GetAdmin retrieves an admin by id
// @Summary Get admin details
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{id} [get]
func (c *AdminController) GetAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	admin, err := c.adminService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin))
}

// CreateAdmin adds an admin profile
// @Summary Create admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Admin information"
// @Success 201 {object} dto.APIResponse{data=models.Admin} "Admin created"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Linked account not found"
// @Failure 409 {object} dto.APIResponse "Admin profile already exists for the account"
// @Router /admins [post]
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if !bindJSON(ctx, &req) {
		return
	}

	admin, err := c.adminService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(admin))
}

// UpdateAdmin patches an admin profile
// @Summary Update admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID" Format(uuid)
// @Param request body dto.UpdateAdminRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if !bindJSON(ctx, &req) {
		return
	}

	admin, err := c.adminService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin))
}

// DeleteAdmin removes an admin profile
// @Summary Delete admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin deleted"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Admin not found"
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	admin, err := c.adminService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin))
}
