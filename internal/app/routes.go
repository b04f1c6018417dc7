package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-authorizer-service/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.AuthorizationHandler) {
	app := a.Router.Group("/authorizations")
	app.POST("", h.AuthorizeTransaction)
	app.GET("/metrics", h.GetMetrics)
	app.GET("/events/:transactionId", h.GetTransactionEvents)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
