package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ticketdesk/config"
	"ticketdesk/handlers"
	"ticketdesk/repositories"
	"ticketdesk/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New(config.DBPath)
	services_instance := services.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	// setup
	tickets := r.Group("/api/tickets")
	{
		tickets.GET("", handlers_instance.Ticket.ListTickets)
		tickets.GET("/:id", handlers_instance.Ticket.GetTicket)
		tickets.POST("", handlers_instance.Ticket.CreateTicket)
		tickets.PATCH("/:id", handlers_instance.Ticket.UpdateTicket)
		tickets.DELETE("/:id", handlers_instance.Ticket.DeleteTicket)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
