package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"store-visit/internal/domain"
	"store-visit/internal/service"
	"store-visit/internal/transport/http/middleware"
	"store-visit/internal/transport/http/response"
)

type CustomerHandler struct {
	orders    *service.OrderService
	pageLimit int
}

func NewCustomerHandler(orders *service.OrderService, pageLimit int) *CustomerHandler {
	return &CustomerHandler{orders: orders, pageLimit: pageLimit}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *CustomerHandler) CreateOrder(c *gin.Context) {
	var in struct {
		ExpiresAt time.Time `json:"expires_at" binding:"required"`
		StoreID   int64     `json:"store_id" binding:"required"`
		WorkerID  int64     `json:"worker_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	draft := &domain.Order{
		ExpiresAt: in.ExpiresAt,
		StoreID:   in.StoreID,
		WorkerID:  in.WorkerID,
	}
	order, err := h.orders.CreateOrder(c.Request.Context(), draft, middleware.ActingUser(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *CustomerHandler) GetOrders(c *gin.Context) {
	var f domain.OrderFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if f.Status != "" && !f.Status.Valid() {
		response.BadRequest(c, fmt.Sprintf("unknown order status: %s", f.Status))
		return
	}
	if f.Limit <= 0 {
		f.Limit = h.pageLimit
	}

	orders, err := h.orders.GetOrders(c.Request.Context(), f, middleware.ActingUser(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *CustomerHandler) UpdateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var p domain.OrderPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.orders.UpdateOrder(c.Request.Context(), id, p)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *CustomerHandler) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order with id: %d deleted", id)})
}

func (h *CustomerHandler) GetStores(c *gin.Context) {
	var f domain.StoreFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if f.Limit <= 0 {
		f.Limit = h.pageLimit
	}

	stores, err := h.orders.GetStores(c.Request.Context(), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (h *CustomerHandler) CreateVisit(c *gin.Context) {
	var in struct {
		OrderID int64 `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	visit, err := h.orders.CreateVisit(c.Request.Context(), &domain.Visit{OrderID: in.OrderID}, middleware.ActingUser(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, visit)
}

func (h *CustomerHandler) GetVisits(c *gin.Context) {
	var f domain.VisitFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if f.Limit <= 0 {
		f.Limit = h.pageLimit
	}

	visits, err := h.orders.GetVisits(c.Request.Context(), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, visits)
}

func (h *CustomerHandler) DeleteVisit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.orders.DeleteVisit(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Visit with id: %d deleted", id)})
}
