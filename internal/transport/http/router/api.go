package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"store-visit/internal/core/auth"
	"store-visit/internal/core/config"
	"store-visit/internal/domain"
	"store-visit/internal/transport/http/handler"
	mdw "store-visit/internal/transport/http/middleware"
)

// NewAPIEngine assembles the customer-facing engine: public login plus the
// authenticated customer routes.
func NewAPIEngine(
	l *zap.Logger,
	cfg *config.Config,
	tokens *auth.Tokens,
	users domain.UserRepository,
	authH *handler.AuthHandler,
	custH *handler.CustomerHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)
	r.Use(cors.New(corsConfig(cfg.App.CORSOrigins)))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.POST("/auth/login", authH.Login)

	customers := api.Group("/customers")
	customers.Use(mdw.AuthUser(tokens, users))
	customers.POST("/create-order", custH.CreateOrder)
	customers.GET("/orders", custH.GetOrders)
	customers.PATCH("/orders/:id", custH.UpdateOrder)
	customers.DELETE("/orders/:id", custH.DeleteOrder)
	customers.GET("/stores", custH.GetStores)
	customers.POST("/create-visit", custH.CreateVisit)
	customers.GET("/visits", custH.GetVisits)
	customers.DELETE("/visits/:id", custH.DeleteVisit)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
