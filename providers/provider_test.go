package providers_test

import (
	"testing"

	"github.com/SwiftShip/SwiftShip-Backend/providers"
	"github.com/SwiftShip/SwiftShip-Backend/providers/fiat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderServiceResolvesByName(t *testing.T) {
	registry := providers.NewProviderService()
	registry.AddProvider(&fiat.PaystackProvider{
		BaseProvider: providers.BaseProvider{
			Name:   providers.Paystack,
			APIKey: "sk_test_registry",
		},
	})

	prov, exists := registry.GetProvider(providers.Paystack)
	require.True(t, exists)

	paystack, ok := prov.(*fiat.PaystackProvider)
	require.True(t, ok)
	assert.Equal(t, "sk_test_registry", paystack.GetAPIKey())
}

func TestProviderServiceUnknownName(t *testing.T) {
	registry := providers.NewProviderService()

	_, exists := registry.GetProvider(providers.S3)
	assert.False(t, exists)
}
