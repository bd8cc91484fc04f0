package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-listingwizard/pkg/catalog"
)

func TestParseResourceType(t *testing.T) {
	got, err := catalog.ParseResourceType("  Apartment ")
	require.NoError(t, err)
	assert.Equal(t, catalog.ResourceApartment, got)

	_, err = catalog.ParseResourceType("castle")
	require.ErrorIs(t, err, catalog.ErrUnknownValue)
}

func TestEnumerationsAreValid(t *testing.T) {
	for _, v := range catalog.AllResourceTypes() {
		assert.True(t, v.Valid(), "resource type %s", v)
	}
	for _, v := range catalog.AllPricingModels() {
		assert.True(t, v.Valid(), "pricing model %s", v)
	}
	for _, v := range catalog.AllCurrencies() {
		assert.True(t, v.Valid(), "currency %s", v)
		assert.Equal(t, 2, v.MinorUnits(), "currency %s", v)
		assert.NotEmpty(t, v.Symbol(), "currency %s", v)
	}
	for _, v := range catalog.AllProfileTypes() {
		assert.True(t, v.Valid(), "profile type %s", v)
	}

	assert.False(t, catalog.Currency("JPY").Valid())
	assert.False(t, catalog.PricingModel("hourly").Valid())
}

func TestAllReturnsCopy(t *testing.T) {
	values := catalog.AllCurrencies()
	values[0] = "XXX"
	assert.Equal(t, catalog.CurrencyEUR, catalog.AllCurrencies()[0])
}

func TestEnumPredicates(t *testing.T) {
	assert.True(t, catalog.ResourceRoom.Residential())
	assert.False(t, catalog.ResourceParking.Residential())
	assert.True(t, catalog.PricingPerMonth.Recurring())
	assert.False(t, catalog.PricingNegotiable.Recurring())
	assert.Equal(t, "€", catalog.CurrencyEUR.Symbol())
}

func TestEnumJSON(t *testing.T) {
	type listing struct {
		Resource catalog.ResourceType `json:"resource"`
		Pricing  catalog.PricingModel `json:"pricing"`
		Currency catalog.Currency     `json:"currency"`
	}

	var decoded listing
	require.NoError(t, json.Unmarshal([]byte(`{"resource":"HOUSE","pricing":"per_night","currency":"gbp"}`), &decoded))
	assert.Equal(t, listing{
		Resource: catalog.ResourceHouse,
		Pricing:  catalog.PricingPerNight,
		Currency: catalog.CurrencyGBP,
	}, decoded)

	err := json.Unmarshal([]byte(`{"currency":"JPY"}`), &decoded)
	require.ErrorIs(t, err, catalog.ErrUnknownValue)

	_, err = json.Marshal(listing{Resource: "castle", Pricing: catalog.PricingFixed, Currency: catalog.CurrencyEUR})
	require.Error(t, err)
}
