package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAllowedSchemesHas(t *testing.T) {
	testCases := []struct {
		name    string
		set     AllowedSchemes
		scheme  PaymentScheme
		wantHas bool
	}{
		{"Bacs in Bacs", AllowBacs, SchemeBacs, true},
		{"Chaps not in Bacs", AllowBacs, SchemeChaps, false},
		{"FasterPayments in combined", AllowBacs | AllowFasterPayments, SchemeFasterPayments, true},
		{"Chaps not in combined", AllowBacs | AllowFasterPayments, SchemeChaps, false},
		{"Empty set", 0, SchemeBacs, false},
		{"Unknown never member", AllowBacs | AllowChaps | AllowFasterPayments, SchemeUnknown, false},
		{"Out of range never member", AllowBacs | AllowChaps | AllowFasterPayments, PaymentScheme(42), false},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.wantHas, tc.set.Has(tc.scheme))
		})
	}
}

func TestSchemesOf(t *testing.T) {
	set := SchemesOf(SchemeChaps, SchemeBacs, SchemeUnknown)

	require.Equal(t, AllowBacs|AllowChaps, set)
	require.Equal(t, []PaymentScheme{SchemeBacs, SchemeChaps}, set.Schemes())
	require.Empty(t, AllowedSchemes(0).Schemes())
}

func TestParseScheme(t *testing.T) {
	for _, s := range Schemes {
		got, err := ParseScheme(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	got, err := ParseScheme("Swift")
	require.ErrorIs(t, err, ErrUnknownScheme)
	require.Equal(t, SchemeUnknown, got)
}

func TestParseStatus(t *testing.T) {
	for _, name := range []string{"Live", "Disabled", "InboundPaymentsOnly"} {
		got, err := ParseStatus(name)
		require.NoError(t, err)
		require.Equal(t, name, got.String())
	}

	_, err := ParseStatus("Closed")
	require.ErrorIs(t, err, ErrUnknownStatus)
}

func TestZeroStatusIsLive(t *testing.T) {
	var a Account
	require.Equal(t, StatusLive, a.Status)
}

func TestAccountJSON(t *testing.T) {
	account := Account{
		Number:         "12345678",
		Balance:        decimal.NewFromInt(110),
		AllowedSchemes: AllowBacs | AllowChaps,
		Status:         StatusDisabled,
	}

	b, err := json.Marshal(account)
	require.NoError(t, err)
	require.Contains(t, string(b), `"allowed_schemes":["Bacs","Chaps"]`)
	require.Contains(t, string(b), `"status":"Disabled"`)

	var got Account
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, account.AllowedSchemes, got.AllowedSchemes)
	require.Equal(t, account.Status, got.Status)
	require.True(t, account.Balance.Equal(got.Balance))
}

func TestPaymentRequestUnknownScheme(t *testing.T) {
	var req PaymentRequest

	err := json.Unmarshal([]byte(`{"payment_scheme":"Swift"}`), &req)
	require.ErrorIs(t, err, ErrUnknownScheme)
}

func TestSchemeTextRoundTrip(t *testing.T) {
	for _, s := range Schemes {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var got PaymentScheme
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, s, got)
	}

	for _, s := range []PaymentScheme{SchemeUnknown, PaymentScheme(42)} {
		_, err := s.MarshalText()
		require.ErrorIs(t, err, ErrUnknownScheme)
	}

	_, err := json.Marshal(PaymentRequest{})
	require.ErrorIs(t, err, ErrUnknownScheme)
}
