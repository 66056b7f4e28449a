// Package httputil holds request parsing and response writing helpers shared
// by all HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
)

// maxBodySize caps request bodies; base64 images dominate the payload.
const maxBodySize = 16 << 20

// Parse decodes the request into v. POST/PUT/PATCH bodies are decoded as
// JSON; query parameters bind to struct fields via `form:"name"` tags.
func Parse(r *http.Request, v any) error {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		body := http.MaxBytesReader(nil, r.Body, maxBodySize)
		if err := json.NewDecoder(body).Decode(v); err != nil {
			return fmt.Errorf("invalid request body: %w", err)
		}
	}
	return parseQuery(r, v)
}

func parseQuery(r *http.Request, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return nil
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return nil
	}

	query := r.URL.Query()
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanSet() {
			continue
		}
		tag := typ.Field(i).Tag.Get("form")
		if tag == "" {
			continue
		}
		raw := query.Get(tag)
		if raw == "" {
			continue
		}
		if err := setField(field, raw); err != nil {
			return fmt.Errorf("query parameter %q: %w", tag, err)
		}
	}
	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OkJSON writes a 200 response with a JSON body.
func OkJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an error response, mapping oversized bodies to 413 and
// everything else to 400. Use ErrorWithCode for explicit status codes.
func Error(w http.ResponseWriter, err error) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		ErrorWithCode(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	ErrorWithCode(w, http.StatusBadRequest, err.Error())
}

// ErrorWithCode writes a JSON error envelope with the given status code.
func ErrorWithCode(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorBody{Code: code, Message: message})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "bad request"
	}
	ErrorWithCode(w, http.StatusBadRequest, message)
}

// InternalError writes a 500 response.
func InternalError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "internal server error"
	}
	ErrorWithCode(w, http.StatusInternalServerError, message)
}
