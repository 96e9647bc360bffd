package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// UserController handles account administration operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers retrieves a page of accounts
// @Summary List accounts
// @Description Retrieves a paginated list of accounts, searchable by email
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort query string false "Sort field"
// @Param order query string false "Sort order (asc|desc)"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Accounts retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	params, ok := bindListQuery(ctx)
	if !ok {
		return
	}

	users, total, err := c.userService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listEnvelope(users, total, params.Page, params.Limit)))
}

// GetUser retrieves an account by id
// @Summary Get account details
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.User} "Account retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// UpdateUser patches an account
// @Summary Update account
// @Description Applies a partial patch to an account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID" Format(uuid)
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.User} "Account updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// DeleteUser removes an account
// @Summary Delete account
// @Description Deletes an account and returns the deleted row; fails if a profile still references it
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.User} "Account deleted"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Failure 412 {object} dto.APIResponse "Account still referenced by a profile"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	user, err := c.userService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}
