// Package catalog holds the closed enumerations the listing wizard exposes
// (resource types, pricing models, currencies and profile types) together with
// the profile catalog that maps each profile type to its ordered wizard steps.
//
// Every enumeration is a typed string with a fixed value set. Switches over
// these types are expected to be exhaustive; the repository's golangci
// configuration enables the exhaustive linter to enforce that at build time.
package catalog
