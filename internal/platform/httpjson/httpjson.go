// Package httpjson junta lo que antes estaba duplicado en cada handler
// (writeJSON por módulo): escritura de respuestas, payload de error y
// decode + validación de cuerpos.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"animal-training-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// MsgServerError es el único mensaje que ve el cliente ante un 500.
const MsgServerError = "Server error."

var ErrInvalidBody = errors.New("invalid request body")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorBody es el payload de todas las respuestas de error.
type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, ErrorBody{Error: msg})
}

func Message(w http.ResponseWriter, status int, msg string) {
	Write(w, status, MessageBody{Message: msg})
}

// ServerError loguea la causa real y responde el 500 genérico.
func ServerError(w http.ResponseWriter, r *http.Request, log logger.Logger, op string, err error) {
	if log != nil {
		log.Error(op, map[string]any{
			"err":        err,
			"request_id": chimw.GetReqID(r.Context()),
			"path":       r.URL.Path,
		})
	}
	Error(w, http.StatusInternalServerError, MsgServerError)
}

// Decode lee el body JSON en dst y aplica los tags `validate`.
// Cualquier falla (JSON roto, tipos, campos requeridos) envuelve ErrInvalidBody.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrInvalidBody
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}
