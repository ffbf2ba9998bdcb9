package utils

import (
	"encoding/json"
	"net/http"
)

// Json writes v as a JSON response body with the given status code.
func Json(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Err writes err as a {"error": ...} JSON body with the given status code.
func Err(w http.ResponseWriter, status int, err error) error {
	return Json(w, status, map[string]string{"error": err.Error()})
}
