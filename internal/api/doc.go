// Package api implements the HTTP handlers for the marketplace API.
// Handlers parse and validate requests, call into the service layer, and
// translate domain errors to transport status codes via errors.go.
package api
