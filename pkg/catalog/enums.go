package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownValue is wrapped by every Parse function for values outside the
// enumeration.
var ErrUnknownValue = errors.New("catalog: unknown value")

// ResourceType identifies the kind of property being listed.
type ResourceType string

const (
	ResourceApartment ResourceType = "apartment"
	ResourceHouse     ResourceType = "house"
	ResourceRoom      ResourceType = "room"
	ResourceOffice    ResourceType = "office"
	ResourceParking   ResourceType = "parking"
	ResourceLand      ResourceType = "land"
)

var resourceTypes = []ResourceType{
	ResourceApartment,
	ResourceHouse,
	ResourceRoom,
	ResourceOffice,
	ResourceParking,
	ResourceLand,
}

// AllResourceTypes returns the resource types in display order.
func AllResourceTypes() []ResourceType {
	return append([]ResourceType(nil), resourceTypes...)
}

// ParseResourceType resolves raw case-insensitively.
func ParseResourceType(raw string) (ResourceType, error) {
	return parseEnum("resource type", raw, resourceTypes)
}

func (r ResourceType) String() string { return string(r) }

// Valid reports whether r belongs to the enumeration.
func (r ResourceType) Valid() bool { return contains(resourceTypes, r) }

// Residential reports whether the resource type is meant to be lived in.
func (r ResourceType) Residential() bool {
	switch r {
	case ResourceApartment, ResourceHouse, ResourceRoom:
		return true
	case ResourceOffice, ResourceParking, ResourceLand:
		return false
	}
	return false
}

func (r ResourceType) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: resource type %q", ErrUnknownValue, string(r))
	}
	return []byte(r), nil
}

func (r *ResourceType) UnmarshalText(text []byte) error {
	parsed, err := ParseResourceType(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// PricingModel identifies how the listing price is expressed.
type PricingModel string

const (
	PricingFixed      PricingModel = "fixed"
	PricingPerNight   PricingModel = "per_night"
	PricingPerMonth   PricingModel = "per_month"
	PricingNegotiable PricingModel = "negotiable"
)

var pricingModels = []PricingModel{
	PricingFixed,
	PricingPerNight,
	PricingPerMonth,
	PricingNegotiable,
}

// AllPricingModels returns the pricing models in display order.
func AllPricingModels() []PricingModel {
	return append([]PricingModel(nil), pricingModels...)
}

// ParsePricingModel resolves raw case-insensitively.
func ParsePricingModel(raw string) (PricingModel, error) {
	return parseEnum("pricing model", raw, pricingModels)
}

func (p PricingModel) String() string { return string(p) }

// Valid reports whether p belongs to the enumeration.
func (p PricingModel) Valid() bool { return contains(pricingModels, p) }

// Recurring reports whether the price repeats per period.
func (p PricingModel) Recurring() bool {
	switch p {
	case PricingPerNight, PricingPerMonth:
		return true
	case PricingFixed, PricingNegotiable:
		return false
	}
	return false
}

func (p PricingModel) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: pricing model %q", ErrUnknownValue, string(p))
	}
	return []byte(p), nil
}

func (p *PricingModel) UnmarshalText(text []byte) error {
	parsed, err := ParsePricingModel(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Currency is an ISO 4217 code accepted for listing prices.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
)

var currencies = []Currency{
	CurrencyEUR,
	CurrencyUSD,
	CurrencyGBP,
	CurrencyCHF,
}

// AllCurrencies returns the supported currencies.
func AllCurrencies() []Currency {
	return append([]Currency(nil), currencies...)
}

// ParseCurrency resolves raw case-insensitively.
func ParseCurrency(raw string) (Currency, error) {
	return parseEnum("currency", raw, currencies)
}

func (c Currency) String() string { return string(c) }

// Valid reports whether c belongs to the enumeration.
func (c Currency) Valid() bool { return contains(currencies, c) }

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	case CurrencyUSD:
		return "$"
	case CurrencyGBP:
		return "£"
	case CurrencyCHF:
		return "CHF"
	}
	return string(c)
}

// MinorUnits returns the number of decimal digits in the minor unit.
func (c Currency) MinorUnits() int {
	switch c {
	case CurrencyEUR, CurrencyUSD, CurrencyGBP, CurrencyCHF:
		return 2
	}
	return 0
}

func (c Currency) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: currency %q", ErrUnknownValue, string(c))
	}
	return []byte(c), nil
}

func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ProfileType identifies who is publishing the listing. Each profile type has
// its own step sequence in the profile catalog.
type ProfileType string

const (
	ProfileIndividual ProfileType = "individual"
	ProfileAgency     ProfileType = "agency"
	ProfileDeveloper  ProfileType = "developer"
)

var profileTypes = []ProfileType{
	ProfileIndividual,
	ProfileAgency,
	ProfileDeveloper,
}

// AllProfileTypes returns the profile types in display order.
func AllProfileTypes() []ProfileType {
	return append([]ProfileType(nil), profileTypes...)
}

// ParseProfileType resolves raw case-insensitively.
func ParseProfileType(raw string) (ProfileType, error) {
	return parseEnum("profile type", raw, profileTypes)
}

func (p ProfileType) String() string { return string(p) }

// Valid reports whether p belongs to the enumeration.
func (p ProfileType) Valid() bool { return contains(profileTypes, p) }

func (p ProfileType) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: profile type %q", ErrUnknownValue, string(p))
	}
	return []byte(p), nil
}

func (p *ProfileType) UnmarshalText(text []byte) error {
	parsed, err := ParseProfileType(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

type enum interface {
	~string
}

func parseEnum[T enum](kind, raw string, values []T) (T, error) {
	trimmed := strings.TrimSpace(raw)
	for _, v := range values {
		if strings.EqualFold(string(v), trimmed) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownValue, kind, raw)
}

func contains[T enum](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
