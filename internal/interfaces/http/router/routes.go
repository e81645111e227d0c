// Package router 提供 HTTP 路由配置
package router

import (
	"silvernest-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由；limit 只作用于调用上游模型的接口
func RegisterV1Routes(v1 *gin.RouterGroup, handlers RouterHandlers, limit gin.HandlerFunc) {
	v1.GET("/options", handler.Options)

	profiles := v1.Group("/profiles")
	{
		profiles.POST("/generate", limit, handlers.Profile.Generate)
		profiles.POST("/preview", limit, handlers.Profile.Preview)
	}

	results := v1.Group("/results")
	{
		results.GET("/:id", handlers.Result.GetResult)
		results.DELETE("/:id", handlers.Result.DeleteResult)
	}
}
