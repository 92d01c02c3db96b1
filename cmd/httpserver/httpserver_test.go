package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-payments/cmd/httpserver"
	"github.com/go-petr/pet-payments/internal/accountrepo"
	"github.com/go-petr/pet-payments/internal/domain"
	"github.com/go-petr/pet-payments/pkg/configpkg"
	"github.com/go-petr/pet-payments/pkg/randompkg"
)

func setupMemServer(t *testing.T) *httpserver.Server {
	t.Helper()

	config := configpkg.Config{DataStoreType: configpkg.StoreMemory}

	store, db, err := accountrepo.Open(config)
	require.NoError(t, err)
	require.Nil(t, db)

	server, err := httpserver.New(store, db, zerolog.Nop(), config)
	require.NoError(t, err)

	return server
}

func postJSON(t *testing.T, h http.Handler, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, req)

	return recorder
}

type paymentResponse struct {
	Data struct {
		Result domain.PaymentResult `json:"result"`
	} `json:"data"`
}

type accountResponse struct {
	Data struct {
		Account domain.Account `json:"account"`
	} `json:"data"`
}

func TestPaymentScenarios(t *testing.T) {
	testCases := []struct {
		name        string
		schemes     []string
		status      string
		balance     string
		scheme      string
		amount      string
		wantSuccess bool
		wantBalance string
	}{
		{
			name:        "BacsAllowed",
			schemes:     []string{"Bacs"},
			balance:     "110",
			scheme:      "Bacs",
			amount:      "50",
			wantSuccess: true,
			wantBalance: "60",
		},
		{
			name:        "BacsNotAllowed",
			schemes:     []string{"Chaps"},
			balance:     "110",
			scheme:      "Bacs",
			amount:      "50",
			wantSuccess: false,
			wantBalance: "110",
		},
		{
			name:        "FasterPaymentsAllowed",
			schemes:     []string{"FasterPayments"},
			balance:     "110",
			scheme:      "FasterPayments",
			amount:      "50",
			wantSuccess: true,
			wantBalance: "60",
		},
		{
			name:        "FasterPaymentsInsufficientBalance",
			schemes:     []string{"FasterPayments"},
			balance:     "40",
			scheme:      "FasterPayments",
			amount:      "50",
			wantSuccess: false,
			wantBalance: "40",
		},
		{
			name:        "ChapsLive",
			schemes:     []string{"Chaps"},
			status:      "Live",
			balance:     "110",
			scheme:      "Chaps",
			amount:      "50",
			wantSuccess: true,
			wantBalance: "60",
		},
		{
			name:        "ChapsNotAllowedDisabled",
			schemes:     []string{"FasterPayments"},
			status:      "Disabled",
			balance:     "110",
			scheme:      "Chaps",
			amount:      "50",
			wantSuccess: false,
			wantBalance: "110",
		},
		{
			name:        "ChapsAllowedDisabled",
			schemes:     []string{"Chaps"},
			status:      "Disabled",
			balance:     "110",
			scheme:      "Chaps",
			amount:      "50",
			wantSuccess: false,
			wantBalance: "110",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server := setupMemServer(t)
			number := randompkg.AccountNumber()

			accountBody := gin.H{
				"number":          number,
				"balance":         tc.balance,
				"allowed_schemes": tc.schemes,
			}
			if tc.status != "" {
				accountBody["status"] = tc.status
			}

			recorder := postJSON(t, server, "/accounts", accountBody)
			require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

			recorder = postJSON(t, server, "/payments", gin.H{
				"debtor_account_number": number,
				"amount":                tc.amount,
				"payment_scheme":        tc.scheme,
			})
			require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

			var payment paymentResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&payment))
			assert.Equal(t, tc.wantSuccess, payment.Data.Result.Success)

			req, err := http.NewRequest(http.MethodGet, "/accounts/"+number, nil)
			require.NoError(t, err)

			recorder = httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

			var account accountResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&account))

			wantBalance := decimal.RequireFromString(tc.wantBalance)
			assert.True(t, wantBalance.Equal(account.Data.Account.Balance),
				"balance = %v, want %v", account.Data.Account.Balance, wantBalance)
		})
	}
}

func TestPaymentUnknownAccount(t *testing.T) {
	server := setupMemServer(t)

	for _, scheme := range domain.Schemes {
		recorder := postJSON(t, server, "/payments", gin.H{
			"debtor_account_number": randompkg.AccountNumber(),
			"amount":                "10",
			"payment_scheme":        scheme.String(),
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var payment paymentResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&payment))
		assert.False(t, payment.Data.Result.Success, scheme.String())
	}
}

func TestRepeatedFailedPaymentLeavesAccountUnchanged(t *testing.T) {
	server := setupMemServer(t)
	ctx := context.Background()

	created, err := server.Store.Create(ctx, domain.CreateAccountParams{
		Number:         randompkg.AccountNumber(),
		Balance:        decimal.NewFromInt(40),
		AllowedSchemes: domain.AllowFasterPayments,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		recorder := postJSON(t, server, "/payments", gin.H{
			"debtor_account_number": created.Number,
			"amount":                "50",
			"payment_scheme":        "FasterPayments",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		got, err := server.Store.GetAccount(ctx, created.Number)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	}
}

func TestRequestIDHeader(t *testing.T) {
	server := setupMemServer(t)

	req, err := http.NewRequest(http.MethodGet, "/accounts/12345678", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}
