package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "Integer", input: "110", want: "110"},
		{name: "Fraction", input: "99.95", want: "99.95"},
		{name: "Negative", input: "-50", want: "-50"},
		{name: "MaxScale", input: "0.000000000000000001", want: "0.000000000000000001"},
		{name: "Exponent", input: "1e18", want: "1000000000000000000"},
		{name: "NotANumber", input: "!@#$", wantErr: ErrInvalidAmount},
		{name: "Empty", input: "", wantErr: ErrInvalidAmount},
		{name: "TooPrecise", input: "0.0000000000000000001", wantErr: ErrInvalidAmount},
		{name: "HugeNegativeExponent", input: "1e-2000000000", wantErr: ErrInvalidAmount},
		{name: "HugePositiveExponent", input: "1e2000000000", wantErr: ErrInvalidAmount},
		{name: "TooManyDigits", input: strings.Repeat("9", MaxAmountDigits+1), wantErr: ErrInvalidAmount},
		{name: "TooLong", input: "1." + strings.Repeat("0", 200), wantErr: ErrInvalidAmount},
		{name: "ExponentTooLarge", input: "1e19", wantErr: ErrInvalidAmount},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAmount(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %v, want %v", got, tc.want)
		})
	}
}
