package stripe_test

import (
	"testing"

	stripe_client "github.com/almasezhe/warauction/pkg/stripe"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyScale(t *testing.T) {
	tests := []struct {
		code  string
		scale int32
	}{
		{"usd", 2},
		{"EUR", 2},
		{"jpy", 0},
		{"krw", 0},
		{"kwd", 3},
		{"isk", 2},
	}

	for _, tt := range tests {
		t.Run("Success - "+tt.code, func(t *testing.T) {
			scale, err := stripe_client.CurrencyScale(tt.code)

			require.NoError(t, err)
			assert.Equal(t, tt.scale, scale)
		})
	}

	t.Run("Failure - Unknown code", func(t *testing.T) {
		_, err := stripe_client.CurrencyScale("zzq")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported currency "zzq"`)
	})
}

func TestMinorUnits(t *testing.T) {
	amount := decimal.NewFromInt(544)

	assert.Equal(t, int64(54400), stripe_client.MinorUnits(amount, 2))
	assert.Equal(t, int64(544), stripe_client.MinorUnits(amount, 0))
	assert.Equal(t, int64(544000), stripe_client.MinorUnits(amount, 3))
	assert.Equal(t, int64(1), stripe_client.MinorUnits(decimal.RequireFromString("0.005"), 2))
}
