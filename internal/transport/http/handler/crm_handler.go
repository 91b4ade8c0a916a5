package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"store-visit/internal/domain"
	"store-visit/internal/service"
	"store-visit/internal/transport/http/response"
)

type CRMHandler struct {
	crm       *service.CRMService
	pageLimit int
}

func NewCRMHandler(crm *service.CRMService, pageLimit int) *CRMHandler {
	return &CRMHandler{crm: crm, pageLimit: pageLimit}
}

func (h *CRMHandler) CreateUser(c *gin.Context) {
	var in struct {
		Username  string          `json:"username" binding:"required"`
		FirstName string          `json:"first_name" binding:"required"`
		Role      domain.UserRole `json:"role" binding:"required"`
		StoreID   *int64          `json:"store_id"`
		Password  string          `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !in.Role.Valid() {
		response.BadRequest(c, fmt.Sprintf("unknown role: %s", in.Role))
		return
	}

	draft := &domain.User{
		Username:  in.Username,
		FirstName: in.FirstName,
		Role:      in.Role,
		StoreID:   in.StoreID,
	}
	user, err := h.crm.CreateUser(c.Request.Context(), draft, in.Password)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *CRMHandler) GetUsers(c *gin.Context) {
	var f domain.UserFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if f.Limit <= 0 {
		f.Limit = h.pageLimit
	}

	users, err := h.crm.GetUsers(c.Request.Context(), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
