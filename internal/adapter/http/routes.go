package http

import (
	"teamboard/internal/adapter/http/handlers"
	"teamboard/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Tasks     *handlers.TaskHandler
	Stream    *handlers.StreamHandler
	Users     *handlers.UserHandler
	Shops     *handlers.ShopHandler
	Channels  *handlers.ChannelHandler
	Dashboard *handlers.DashboardHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Tasks.ListTasks)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.POST("/tasks/support", h.Tasks.CreateSupportTask)
		api.POST("/tasks/media", h.Tasks.CreateMediaTask)
		api.GET("/tasks/stream", h.Stream.StreamTasks)
		api.GET("/tasks/:id", h.Tasks.GetTask)
		api.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		api.POST("/tasks/:id/start", h.Tasks.StartTask)
		api.POST("/tasks/:id/complete", h.Tasks.CompleteTask)
		api.PUT("/tasks/:id/progress", h.Tasks.SetProgress)

		api.GET("/users", h.Users.ListUsers)
		api.POST("/users", h.Users.CreateUser)
		api.GET("/users/:id", h.Users.GetUser)
		api.PUT("/users/:id", h.Users.UpdateUser)
		api.DELETE("/users/:id", h.Users.DeleteUser)

		api.GET("/shops", h.Shops.ListShops)
		api.POST("/shops", h.Shops.CreateShop)
		api.GET("/shops/:id", h.Shops.GetShop)
		api.PUT("/shops/:id", h.Shops.UpdateShop)
		api.DELETE("/shops/:id", h.Shops.DeleteShop)

		api.GET("/channels", h.Channels.ListChannels)
		api.POST("/channels", h.Channels.CreateChannel)
		api.GET("/channels/:id", h.Channels.GetChannel)
		api.PUT("/channels/:id", h.Channels.UpdateChannel)
		api.DELETE("/channels/:id", h.Channels.DeleteChannel)

		api.GET("/dashboard/performance", h.Dashboard.Performance)
		api.GET("/dashboard/workload", h.Dashboard.Workload)
		api.GET("/dashboard/summary", h.Dashboard.Summary)
	}
}
