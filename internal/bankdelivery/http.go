// Package bankdelivery manages delivery layer of account operations.
package bankdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cashops/cash-bank/internal/domain"
	"github.com/cashops/cash-bank/internal/middleware"
	"github.com/cashops/cash-bank/pkg/currencypkg"
	"github.com/cashops/cash-bank/pkg/errorspkg"
	"github.com/cashops/cash-bank/pkg/tokenpkg"
	"github.com/cashops/cash-bank/pkg/web"
)

// Service provides service layer interface needed by the delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bankdelivery
type Service interface {
	PaymentIn(ctx context.Context, user domain.User, amount decimal.Decimal, description string, accountID int32) error
	PaymentOut(ctx context.Context, user domain.User, amount decimal.Decimal, description string, accountID int32) error
	InternalPayment(ctx context.Context, user domain.User, amount decimal.Decimal, description string, fromID, toID int32) error
	LogIn(ctx context.Context, username string, password []byte) (string, error)
	LogOut(ctx context.Context, username string) bool
}

// Users resolves authenticated usernames into users.
type Users interface {
	GetUserByName(ctx context.Context, name string) (domain.User, error)
}

// Handler facilitates account operations delivery layer logic.
type Handler struct {
	service  Service
	users    Users
	exchange *currencypkg.Exchange
}

// NewHandler returns account operations handler.
func NewHandler(s Service, u Users, e *currencypkg.Exchange) Handler {
	return Handler{service: s, users: u, exchange: e}
}

func bindErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return "invalid request"
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrLockTimeout):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(gctx *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		err = errorspkg.ErrInternal
	}

	gctx.JSON(status, web.Error(err))
}

func (h *Handler) caller(gctx *gin.Context) (domain.User, error) {
	payload := gctx.MustGet(middleware.AuthorizationPayloadKey).(*tokenpkg.Payload)

	return h.users.GetUserByName(gctx.Request.Context(), payload.Username)
}

type loginRequest struct {
	Username string `json:"username" binding:"required,alphanum"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login handles http request to authenticate and open a session.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMsg(err)})

		return
	}

	token, err := h.service.LogIn(ctx, req.Username, []byte(req.Password))
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{AccessToken: token})
}

// Logout handles http request to close the caller's sessions.
func (h *Handler) Logout(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	payload := gctx.MustGet(middleware.AuthorizationPayloadKey).(*tokenpkg.Payload)

	existed := h.service.LogOut(ctx, payload.Username)
	if !existed {
		gctx.JSON(http.StatusNotFound, web.Error(domain.ErrSessionNotFound))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"logged_out": true}})
}

type accountURI struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type movementRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) movement(gctx *gin.Context, kind domain.OperationKind) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMsg(err)})

		return
	}

	var req movementRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMsg(err)})

		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))

		return
	}

	user, err := h.caller(gctx)
	if err != nil {
		writeError(gctx, err)
		return
	}

	switch kind {
	case domain.OpDeposit:
		err = h.service.PaymentIn(ctx, user, amount, req.Description, uri.ID)
	case domain.OpWithdrawal:
		err = h.service.PaymentOut(ctx, user, amount, req.Description, uri.ID)
	}

	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"account_id": uri.ID, "amount": amount.String()}})
}

// Deposit handles http request to credit an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.movement(gctx, domain.OpDeposit)
}

// Withdraw handles http request to debit an account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.movement(gctx, domain.OpWithdrawal)
}

type transferRequest struct {
	FromAccountID int32  `json:"from_account_id" binding:"required,min=1"`
	ToAccountID   int32  `json:"to_account_id" binding:"required,min=1"`
	Amount        string `json:"amount" binding:"required"`
	Description   string `json:"description"`
}

// Transfer handles http request to move money between two accounts.
func (h *Handler) Transfer(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMsg(err)})

		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))

		return
	}

	user, err := h.caller(gctx)
	if err != nil {
		writeError(gctx, err)
		return
	}

	err = h.service.InternalPayment(ctx, user, amount, req.Description, req.FromAccountID, req.ToAccountID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: gin.H{
			"from_account_id": req.FromAccountID,
			"to_account_id":   req.ToAccountID,
			"amount":          amount.String(),
		},
	})
}

type exchangeRequest struct {
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
	Amount string `form:"amount" binding:"required"`
}

// ExchangeQuote handles http request to quote a currency conversion against
// the loaded rate table.
func (h *Handler) ExchangeQuote(gctx *gin.Context) {
	l := zerolog.Ctx(gctx)

	var req exchangeRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrorMsg(err)})

		return
	}

	for _, c := range []string{req.From, req.To} {
		if !currencypkg.IsSupportedCurrency(c) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: c + " is not supported"})
			return
		}
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))

		return
	}

	converted, err := h.exchange.Convert(req.From, req.To, amount)
	if err != nil {
		switch {
		case errors.Is(err, currencypkg.ErrUnknownPair):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		case errors.Is(err, currencypkg.ErrNegativeValue):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
		default:
			l.Error().Err(err).Send()
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: gin.H{
			"from":      req.From,
			"to":        req.To,
			"amount":    amount.String(),
			"converted": converted.String(),
		},
	})
}
