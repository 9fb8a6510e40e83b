package services

import "net/http"

// Result is the uniform outcome of every entity mutation. Status carries
// an HTTP-style code so handlers can serialize it directly.
type Result struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func ok(message string, data interface{}) *Result {
	return &Result{Status: http.StatusOK, Message: message, Data: data}
}

func badRequest(message string) *Result {
	return &Result{Status: http.StatusBadRequest, Message: message}
}

func notFound(message string) *Result {
	return &Result{Status: http.StatusNotFound, Message: message}
}

func serverError(message string) *Result {
	return &Result{Status: http.StatusInternalServerError, Message: message}
}
