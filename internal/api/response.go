// Package api defines HTTP response DTO types shared across handlers.
package api

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WelcomeResponse is the JSON body of the root endpoint.
type WelcomeResponse struct {
	Message string `json:"message"`
}
