// Package httpserver manages construction of the fully wired bank and its
// api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cashops/cash-bank/internal/accountmanager"
	"github.com/cashops/cash-bank/internal/authmanager"
	"github.com/cashops/cash-bank/internal/bankdelivery"
	"github.com/cashops/cash-bank/internal/bankhistory"
	"github.com/cashops/cash-bank/internal/bankrepo"
	"github.com/cashops/cash-bank/internal/interestoperator"
	"github.com/cashops/cash-bank/internal/middleware"
	"github.com/cashops/cash-bank/internal/sessionstore"
	"github.com/cashops/cash-bank/pkg/configpkg"
	"github.com/cashops/cash-bank/pkg/currencypkg"
	"github.com/cashops/cash-bank/pkg/tokenpkg"
)

// Server holds the db connection, the handlers router, the accrual
// scheduler and the configuration.
type Server struct {
	DB        *sql.DB
	Engine    *gin.Engine
	Config    configpkg.Config
	Scheduler *interestoperator.Scheduler
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New builds the bank: every collaborator is constructed and wired, and any
// missing piece surfaces as an explicit error rather than an unusable nil.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	repo := bankrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	sessions := sessionstore.New(config.SessionDuration)

	authService, err := authmanager.New(repo, sessions, tokenMaker, config.AccessTokenDuration)
	if err != nil {
		return nil, errors.New("cannot initialize auth manager")
	}

	history, err := bankhistory.New(repo)
	if err != nil {
		return nil, errors.New("cannot initialize bank history")
	}

	manager, err := accountmanager.New(repo, authService, history, config.AccountLockTimeout)
	if err != nil {
		return nil, errors.New("cannot initialize account manager")
	}

	operator, err := interestoperator.New(repo, manager, authService, history, config)
	if err != nil {
		return nil, errors.New("cannot initialize interest operator")
	}

	scheduler, err := interestoperator.NewScheduler(operator, config.InterestCronSpec, logger)
	if err != nil {
		return nil, errors.New("cannot initialize interest scheduler")
	}

	exchange, err := currencypkg.NewExchangeFromFile(config.ExchangeRatesFile)
	if err != nil {
		return nil, errors.New("cannot load exchange rates")
	}

	handler := bankdelivery.NewHandler(manager, repo, exchange)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/sessions", handler.Login)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.DELETE("/sessions", handler.Logout)
	authRoutes.POST("/accounts/:id/deposits", handler.Deposit)
	authRoutes.POST("/accounts/:id/withdrawals", handler.Withdraw)
	authRoutes.POST("/transfers", handler.Transfer)
	authRoutes.GET("/exchange", handler.ExchangeQuote)

	server := &Server{
		DB:        conn,
		Engine:    engine,
		Config:    config,
		Scheduler: scheduler,
	}

	return server, nil
}
