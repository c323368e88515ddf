package http

import (
	"net/http"
	"strconv"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// idParam reads a positive integer path parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validator.ValidationErrors{{
			Field:   name,
			Message: name + " must be a positive integer",
		}}
	}
	return id, nil
}

// intQuery reads an optional integer query parameter; absent means 0.
func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validator.ValidationErrors{{
			Field:   name,
			Message: name + " must be an integer",
		}}
	}
	return v, nil
}
