package pricing

import (
	"fmt"

	"github.com/SwiftShip/SwiftShip-Backend/services/shipment"
	"github.com/shopspring/decimal"
)

// Flags are the booking options that affect price.
type Flags struct {
	Fragile bool
}

// Oracle quotes a shipment price. Implementations must be pure: same inputs,
// same price, no side effects.
type Oracle interface {
	Quote(weightKg decimal.Decimal, serviceType string, flags Flags) (decimal.Decimal, error)
}

type rate struct {
	base  decimal.Decimal
	perKg decimal.Decimal
}

// RateTableOracle prices against a fixed NGN rate table.
type RateTableOracle struct {
	rates            map[string]rate
	fragileSurcharge decimal.Decimal
}

func NewRateTableOracle() *RateTableOracle {
	return &RateTableOracle{
		rates: map[string]rate{
			shipment.ServiceStandard: {
				base:  decimal.NewFromInt(1500),
				perKg: decimal.NewFromInt(350),
			},
			shipment.ServiceExpress: {
				base:  decimal.NewFromInt(3000),
				perKg: decimal.NewFromInt(600),
			},
		},
		// Fragile handling adds 10%
		fragileSurcharge: decimal.NewFromFloat(0.10),
	}
}

func (o *RateTableOracle) Quote(weightKg decimal.Decimal, serviceType string, flags Flags) (decimal.Decimal, error) {
	if weightKg.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("weight must be positive, got %s", weightKg)
	}

	r, ok := o.rates[serviceType]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown service type %q", serviceType)
	}

	price := r.base.Add(r.perKg.Mul(weightKg))
	if flags.Fragile {
		price = price.Add(price.Mul(o.fragileSurcharge))
	}

	return price.Round(2), nil
}
