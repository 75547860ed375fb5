package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"issuetracker/internal/application/ticket/usecases"
	"issuetracker/internal/infrastructure/config"
	"issuetracker/internal/infrastructure/repository"
	tickethandlers "issuetracker/internal/interfaces/http/handlers/ticket"
	"issuetracker/internal/interfaces/http/middleware"
	"issuetracker/internal/interfaces/http/routes"
	"issuetracker/internal/shared/db"
	"issuetracker/internal/shared/logger"
)

// Router wires the HTTP surface: use cases, handlers and middleware.
type Router struct {
	engine        *gin.Engine
	ticketHandler *tickethandlers.TicketHandler
	logger        logger.Interface
}

func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(database)
	txManager := db.NewTransactionManager(database)

	createUC := usecases.NewCreateTicketUseCase(ticketRepo, log)
	getUC := usecases.NewGetTicketUseCase(ticketRepo, log)
	listUC := usecases.NewListTicketsUseCase(ticketRepo, log)
	updateUC := usecases.NewUpdateTicketUseCase(ticketRepo, txManager, log)
	deleteUC := usecases.NewDeleteTicketUseCase(ticketRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(createUC, getUC, listUC, updateUC, deleteUC)

	return &Router{
		engine:        engine,
		ticketHandler: ticketHandler,
		logger:        log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.CustomLogger(r.logger))
	r.engine.Use(middleware.Recovery())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
