// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-payments/internal/accountdelivery"
	"github.com/go-petr/pet-payments/internal/accountrepo"
	"github.com/go-petr/pet-payments/internal/accountservice"
	"github.com/go-petr/pet-payments/internal/middleware"
	"github.com/go-petr/pet-payments/internal/paymentdelivery"
	"github.com/go-petr/pet-payments/internal/paymentservice"
	"github.com/go-petr/pet-payments/pkg/configpkg"
	"github.com/go-petr/pet-payments/pkg/web"
)

// Server holds the account store, its db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Store  accountrepo.Store
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
//
// conn may be nil when store is not backed by a database.
func New(store accountrepo.Store, conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountService := accountservice.New(store)
	paymentService := paymentservice.New(store)

	accountHandler := accountdelivery.NewHandler(accountService)
	paymentHandler := paymentdelivery.NewHandler(paymentService)

	if err := web.RegisterValidators(binding.Validator.Engine()); err != nil {
		return nil, fmt.Errorf("cannot register validators: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:number", accountHandler.Get)

	engine.POST("/payments", paymentHandler.Create)

	server := &Server{
		DB:     conn,
		Store:  store,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
