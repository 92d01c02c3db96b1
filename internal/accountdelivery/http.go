// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-payments/internal/domain"
	"github.com/go-petr/pet-payments/pkg/errorspkg"
	"github.com/go-petr/pet-payments/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, number string) (domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Number         string   `json:"number" binding:"required,numeric,len=8"`
	Balance        string   `json:"balance" binding:"required"`
	AllowedSchemes []string `json:"allowed_schemes" binding:"dive,scheme"`
	Status         string   `json:"status" binding:"omitempty,status"`
}

func (r createRequest) params() (domain.CreateAccountParams, error) {
	balance, err := domain.ParseAmount(r.Balance)
	if err != nil {
		return domain.CreateAccountParams{}, err
	}

	arg := domain.CreateAccountParams{
		Number:  r.Number,
		Balance: balance,
	}

	for _, name := range r.AllowedSchemes {
		scheme, err := domain.ParseScheme(name)
		if err != nil {
			return domain.CreateAccountParams{}, err
		}

		arg.AllowedSchemes |= domain.SchemesOf(scheme)
	}

	if r.Status != "" {
		if arg.Status, err = domain.ParseStatus(r.Status); err != nil {
			return domain.CreateAccountParams{}, err
		}
	}

	return arg, nil
}

// Create handles http request to open an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	arg, err := req.params()
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	createdAccount, err := h.service.Create(ctx, arg)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNegativeAmount):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case errors.Is(err, domain.ErrAccountAlreadyExists):
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{
		Data: data{createdAccount},
	})
}

type getRequest struct {
	Number string `uri:"number" binding:"required,numeric,len=8"`
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	acc, err := h.service.Get(ctx, req.Number)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{
		Data: data{acc},
	})
}
