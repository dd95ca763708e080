package routes

import (
	"github.com/azimeazdhan1231/trynex-lifestyle-api/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
