package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope every endpoint speaks: success flag,
// human message, optional payload and validation errors.
type Response struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// WriteJSON writes an arbitrary payload with the given status code.
// Handlers that need a non-envelope body (auth returns token/user at
// the top level) use this directly.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// ResponseJSON writes the standard envelope with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, success bool, msg string, data, errors any) {
	WriteJSON(w, code, Response{
		Success: success,
		Msg:     msg,
		Data:    data,
		Errors:  errors,
	})
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, msg string, data any) {
	ResponseJSON(w, http.StatusOK, true, msg, data, nil)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, msg string, data any) {
	ResponseJSON(w, http.StatusCreated, true, msg, data, nil)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, msg string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, false, msg, nil, errors)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusUnauthorized, false, msg, nil, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusForbidden, false, msg, nil, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusNotFound, false, msg, nil, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusInternalServerError, false, msg, nil, nil)
}
