package pricing

import (
	"testing"

	"github.com/SwiftShip/SwiftShip-Backend/services/shipment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTableQuote(t *testing.T) {
	oracle := NewRateTableOracle()

	cases := []struct {
		name        string
		weightKg    string
		serviceType string
		fragile     bool
		want        string
	}{
		{"standard 1kg", "1", shipment.ServiceStandard, false, "1850"},
		{"standard 2.5kg", "2.5", shipment.ServiceStandard, false, "2375"},
		{"express 1kg", "1", shipment.ServiceExpress, false, "3600"},
		{"express 3kg fragile", "3", shipment.ServiceExpress, true, "5280"},
		{"standard fragile", "2", shipment.ServiceStandard, true, "2420"},
		{"fractional rounding", "0.333", shipment.ServiceStandard, false, "1616.55"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			weight, err := decimal.NewFromString(tc.weightKg)
			require.NoError(t, err)

			price, err := oracle.Quote(weight, tc.serviceType, Flags{Fragile: tc.fragile})
			require.NoError(t, err)
			assert.True(t, price.Equal(decimal.RequireFromString(tc.want)),
				"want %s, got %s", tc.want, price)
		})
	}
}

func TestRateTableQuoteIsDeterministic(t *testing.T) {
	oracle := NewRateTableOracle()
	weight := decimal.RequireFromString("4.2")

	first, err := oracle.Quote(weight, shipment.ServiceExpress, Flags{Fragile: true})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := oracle.Quote(weight, shipment.ServiceExpress, Flags{Fragile: true})
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
}

func TestRateTableQuoteRejectsBadInput(t *testing.T) {
	oracle := NewRateTableOracle()

	_, err := oracle.Quote(decimal.Zero, shipment.ServiceStandard, Flags{})
	assert.Error(t, err)

	_, err = oracle.Quote(decimal.NewFromInt(-2), shipment.ServiceStandard, Flags{})
	assert.Error(t, err)

	_, err = oracle.Quote(decimal.NewFromInt(1), "drone", Flags{})
	assert.Error(t, err)
}
