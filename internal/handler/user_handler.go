package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apierrors "usuarios-api/internal/errors"
	"usuarios-api/internal/model"
	"usuarios-api/internal/service"
)

// UserHandler bundles the HTTP handlers for the /usuarios resource.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UserRequest is the payload for create and update.
type UserRequest struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UserMutationResponse is the body of every successful mutation.
type UserMutationResponse struct {
	Message string      `json:"message"`
	Usuario *model.User `json:"usuario"`
}

// ListUsers godoc
// @Summary List users
// @Tags usuarios
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return apierrors.MapErrorToHTTP(err, "Erro ao buscar usuários")
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return apierrors.MapErrorToHTTP(err, "Erro ao buscar usuário")
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser godoc
// @Summary Create user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param user body UserRequest true "User payload"
// @Success 201 {object} UserMutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	req, err := bindUserRequest(c)
	if err != nil {
		return err
	}
	user, err := h.svc.CreateUser(c.Request().Context(), req.Nome, req.Email)
	if err != nil {
		return apierrors.MapErrorToHTTP(err, "Erro ao criar usuário")
	}
	return c.JSON(http.StatusCreated, UserMutationResponse{
		Message: "Usuário criado com sucesso",
		Usuario: user,
	})
}

// UpdateUser godoc
// @Summary Update user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UserRequest true "User payload"
// @Success 200 {object} UserMutationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, err := bindUserRequest(c)
	if err != nil {
		return err
	}
	user, err := h.svc.UpdateUser(c.Request().Context(), id, req.Nome, req.Email)
	if err != nil {
		return apierrors.MapErrorToHTTP(err, "Erro ao atualizar usuário")
	}
	return c.JSON(http.StatusOK, UserMutationResponse{
		Message: "Usuário atualizado com sucesso",
		Usuario: user,
	})
}

// DeleteUser godoc
// @Summary Delete user
// @Tags usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserMutationResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return apierrors.MapErrorToHTTP(err, "Erro ao excluir usuário")
	}
	return c.JSON(http.StatusOK, UserMutationResponse{
		Message: "Usuário excluído com sucesso",
		Usuario: user,
	})
}

// parseID reads the :id path param. Anything that is not a positive integer
// cannot match a row, so it maps straight to 404.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, apierrors.MapErrorToHTTP(apierrors.ErrUserNotFound, "")
	}
	return uint(id), nil
}

func bindUserRequest(c echo.Context) (*UserRequest, error) {
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return nil, apierrors.MapErrorToHTTP(apierrors.ErrMissingFields, "")
	}
	if err := c.Validate(&req); err != nil {
		return nil, apierrors.MapErrorToHTTP(apierrors.ErrMissingFields, "")
	}
	return &req, nil
}
