package users

import (
	"errors"
	"net/http"

	"animal-training-api/internal/platform/httpjson"
	"animal-training-api/internal/platform/logger"
	"animal-training-api/internal/platform/paging"

	"github.com/go-chi/chi/v5"
)

const (
	msgAllFieldsRequired   = "All fields are required."
	msgCredentialsRequired = "Email and password are required."
	msgInvalidCredentials  = "Invalid email or password."
	msgLoginSuccessful     = "Login successful"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/user", func(ur chi.Router) {
		ur.Post("/", registerHandler(svc, log))
		ur.Post("/login", loginHandler(svc, log))
		ur.Post("/verify", verifyHandler(svc, log))
	})
}

// RegisterAdminRoutes monta el listado paginado (sin auth).
func RegisterAdminRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/users", listUsersHandler(svc, log))
}

// registerRequest es el cuerpo del alta de usuario.
type registerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// credentialsRequest es el cuerpo de login y verify.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse es el documento de usuario. password solo aparece en el alta
// (es el hash bcrypt); los listados de admin lo omiten.
type userResponse struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type usersPageResponse struct {
	Users       []userResponse `json:"users"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage any            `json:"currentPage"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Crea un usuario. La password se guarda como hash bcrypt y la respuesta devuelve el documento guardado, hash incluido. Email duplicado => 500.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos del usuario"
// @Success 200 {object} userResponse
// @Failure 400 {object} httpjson.ErrorBody "All fields are required."
// @Failure 500 {object} httpjson.ErrorBody "Server error."
// @Router /api/user [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, msgAllFieldsRequired)
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.Error(w, http.StatusBadRequest, msgAllFieldsRequired)
			default:
				// Incluye ErrEmailTaken: el contrato responde 500 genérico.
				httpjson.ServerError(w, r, log, "register user failed", err)
			}
			return
		}

		httpjson.Write(w, http.StatusOK, toUserResponse(u))
	}
}

// loginHandler godoc
// @Summary Login
// @Description Valida email + password. No emite token (ver /api/user/verify).
// @Tags users
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credenciales"
// @Success 200 {object} httpjson.MessageBody
// @Failure 400 {object} httpjson.ErrorBody "Email and password are required."
// @Failure 403 {object} httpjson.ErrorBody "Invalid email or password."
// @Failure 500 {object} httpjson.ErrorBody "Server error."
// @Router /api/user/login [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, msgCredentialsRequired)
			return
		}

		if _, err := svc.Authenticate(r.Context(), req.Email, req.Password); err != nil {
			writeAuthError(w, r, log, err)
			return
		}

		httpjson.Message(w, http.StatusOK, msgLoginSuccessful)
	}
}

// verifyHandler godoc
// @Summary Emitir token
// @Description Valida credenciales y devuelve un JWT HS256 con {id, email, firstName, lastName}, válido por 1 hora.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credenciales"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} httpjson.ErrorBody "Email and password are required."
// @Failure 403 {object} httpjson.ErrorBody "Invalid email or password."
// @Failure 500 {object} httpjson.ErrorBody "Server error."
// @Router /api/user/verify [post]
func verifyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, msgCredentialsRequired)
			return
		}

		token, err := svc.IssueToken(r.Context(), req.Email, req.Password)
		if err != nil {
			writeAuthError(w, r, log, err)
			return
		}

		httpjson.Write(w, http.StatusOK, tokenResponse{Token: token})
	}
}

// listUsersHandler godoc
// @Summary Listar usuarios (admin)
// @Description Página de usuarios sin el campo password. Sin autenticación.
// @Tags admin
// @Produce json
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Tamaño de página (default 10)"
// @Success 200 {object} usersPageResponse
// @Failure 500 {object} httpjson.ErrorBody "Server error."
// @Router /api/admin/users [get]
func listUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := paging.FromRequest(r)

		items, total, err := svc.List(r.Context(), p)
		if err != nil {
			httpjson.ServerError(w, r, log, "list users failed", err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			u.PasswordHash = ""
			out = append(out, toUserResponse(u))
		}

		httpjson.Write(w, http.StatusOK, usersPageResponse{
			Users:       out,
			TotalPages:  p.TotalPages(total),
			CurrentPage: paging.CurrentPage(r),
		})
	}
}

func writeAuthError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Error(w, http.StatusBadRequest, msgCredentialsRequired)
	case errors.Is(err, ErrInvalidCredentials):
		httpjson.Error(w, http.StatusForbidden, msgInvalidCredentials)
	default:
		httpjson.ServerError(w, r, log, "authenticate user failed", err)
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.PasswordHash,
	}
}
