package httpserver

import (
	"github.com/gin-gonic/gin"
)

func (srv HTTPServer) mapHandlers() {
	srv.gin.Use(gin.Recovery())
	if srv.environment != "production" {
		srv.gin.Use(gin.Logger())
	}

	srv.registerSystemRoutes()
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
