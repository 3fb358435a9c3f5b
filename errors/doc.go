// Package errors provides unified error handling for the TravelgateX
// adapter. It implements a single structured error type with machine-readable
// codes so hosts can branch on the failure class without string matching.
package errors
