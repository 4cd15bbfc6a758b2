package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fleetrental-backend/internal/logger"
	"fleetrental-backend/internal/repository"
	"fleetrental-backend/internal/security"
	"fleetrental-backend/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// respondServiceError maps service and repository errors onto HTTP status
// codes. Anything unrecognized is a 500 with the detail kept in the logs.
func respondServiceError(w http.ResponseWriter, err error) {
	var dup *service.DuplicatePhoneError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, service.ErrBookingConflict):
		respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &dup):
		respondError(w, http.StatusConflict, dup.Error())
	case errors.Is(err, service.ErrMissingDates):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// flexFloat decodes a JSON number, a numeric string, null, or an empty
// string, all as a float64. The dashboard forms historically posted rate and
// discount fields as strings, and a blank field means zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}
