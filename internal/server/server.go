package server

import (
	"ctchen222/tictactoe/internal/api/controller"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "tictactoe"

type Server struct {
	engine         *gin.Engine
	moveController *controller.MoveController
	metrics        http.Handler
}

// NewServer wires the API routes. metrics may be nil, in which case /metrics is not served.
func NewServer(moveController *controller.MoveController, metrics http.Handler) *Server {
	s := &Server{
		engine:         gin.New(),
		moveController: moveController,
		metrics:        metrics,
	}
	s.RegisterHandlers()
	return s
}

func (s *Server) RegisterHandlers() {
	s.engine.Use(gin.Recovery(), otelgin.Middleware(serviceName))

	s.engine.GET("/healthz", s.moveController.Health)
	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics))
	}

	v1 := s.engine.Group("/api/v1")
	v1.POST("/move", s.moveController.Move)
}

// Engine returns the HTTP handler serving every route.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
