// Package config defines the TravelgateX credential surface: the
// credentials struct with defaults and pattern validation, an env/file
// loader, and the token template hosts use to render credential forms.
package config
