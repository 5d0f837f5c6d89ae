package handler

import (
	"net/http"

	"plantbook/api/middleware"
	"plantbook/internal/dto"
	"plantbook/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Service *service.AuthService
}

func NewUserHandler(svc *service.AuthService) *UserHandler {
	return &UserHandler{Service: svc}
}

func (h *UserHandler) UserDetails(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized", nil)
	}
	user, err := h.Service.GetUser(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeSuccess(c, http.StatusOK, "User details fetched successfully", dto.UserResponseFromEntity(user))
}
