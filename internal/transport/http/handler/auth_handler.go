package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"store-visit/internal/service"
	"store-visit/internal/transport/http/response"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		DeviceID string `json:"device_id"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), in.Username, in.Password, in.DeviceID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}
