// Package paymentdelivery manages delivery layer of payments.
package paymentdelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-payments/internal/domain"
	"github.com/go-petr/pet-payments/pkg/web"
)

// Service provides service layer interface needed by payment delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package paymentdelivery
type Service interface {
	MakePayment(ctx context.Context, req domain.PaymentRequest) domain.PaymentResult
}

// Handler facilitates payment delivery layer logic.
type Handler struct {
	service Service
	now     func() time.Time
}

// NewHandler returns payment handler.
func NewHandler(ps Service) *Handler {
	return &Handler{
		service: ps,
		now:     time.Now,
	}
}

type request struct {
	DebtorAccountNumber   string     `json:"debtor_account_number" binding:"required,numeric,len=8"`
	CreditorAccountNumber string     `json:"creditor_account_number" binding:"omitempty,numeric,len=8"`
	Amount                string     `json:"amount" binding:"required"`
	PaymentDate           *time.Time `json:"payment_date"`
	PaymentScheme         string     `json:"payment_scheme" binding:"required,scheme"`
}

type data struct {
	Result domain.PaymentResult `json:"result"`
}

type response struct {
	Data data `json:"data"`
}

// Create handles http request to make a payment from the debtor account.
//
// Both outcomes are answered with 200 and the result flag, malformed requests
// with 400.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		l.Info().Err(err).Str("amount", req.Amount).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	if !amount.IsPositive() {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrNegativeAmount))
		return
	}

	scheme, err := domain.ParseScheme(req.PaymentScheme)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	paymentDate := h.now().UTC()
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}

	result := h.service.MakePayment(ctx, domain.PaymentRequest{
		CreditorAccountNumber: req.CreditorAccountNumber,
		DebtorAccountNumber:   req.DebtorAccountNumber,
		Amount:                amount,
		PaymentDate:           paymentDate,
		PaymentScheme:         scheme,
	})

	l.Info().
		Str("debtor_account_number", req.DebtorAccountNumber).
		Stringer("payment_scheme", scheme).
		Bool("success", result.Success).
		Msg("payment processed")

	gctx.JSON(http.StatusOK, response{
		Data: data{result},
	})
}
