package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"store-visit/internal/core/server"
	"store-visit/internal/transport/http/handler"
)

// NewCRMEngine assembles the back-office engine for user provisioning.
func NewCRMEngine(l *zap.Logger, crmH *handler.CRMHandler) *gin.Engine {
	r := server.NewRouter(l)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	crm := r.Group("/crm/v1")
	crm.POST("/create-user", crmH.CreateUser)
	crm.GET("/users", crmH.GetUsers)

	return r
}
