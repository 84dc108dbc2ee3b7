package animals

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"animal-training-api/internal/middleware"
	"animal-training-api/internal/platform/httpjson"
	"animal-training-api/internal/platform/logger"
	"animal-training-api/internal/platform/paging"

	"github.com/go-chi/chi/v5"
)

const msgAllFieldsRequired = "All fields are required."

// dateLayouts son los formatos aceptados para dateOfBirth, del más al menos específico.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// RegisterRoutes monta POST /animal detrás de requireAuth.
func RegisterRoutes(r chi.Router, svc *Service, requireAuth func(http.Handler) http.Handler, log logger.Logger) {
	r.With(requireAuth).Post("/animal", createAnimalHandler(svc, log))
}

// RegisterAdminRoutes monta el listado paginado (sin auth).
func RegisterAdminRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/animals", listAnimalsHandler(svc, log))
}

// createAnimalRequest es el cuerpo del alta. El dueño sale del token, no del body.
type createAnimalRequest struct {
	Name        string `json:"name" validate:"required"`
	Species     string `json:"species" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"` // RFC3339 o YYYY-MM-DD
}

// animalResponse es el documento de animal; owner es el ID sin expandir.
type animalResponse struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	HoursTrained float64   `json:"hoursTrained"`
	Owner        string    `json:"owner"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
}

type animalsPageResponse struct {
	Animals     []animalResponse `json:"animals"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage any              `json:"currentPage"`
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description Crea un animal cuyo dueño es el usuario del token. species es obligatorio pero no se persiste.
// @Tags animals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 200 {object} animalResponse
// @Failure 400 {object} httpjson.ErrorBody "All fields are required."
// @Failure 401 {object} httpjson.ErrorBody "Access denied, token missing."
// @Failure 403 {object} httpjson.ErrorBody "Invalid token."
// @Failure 500 {object} httpjson.ErrorBody "Server error."
// @Router /api/animal [post]
func createAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, middleware.MsgTokenMissing)
			return
		}

		var req createAnimalRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, msgAllFieldsRequired)
			return
		}

		dob, err := parseDate(req.DateOfBirth)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "dateOfBirth must be a valid date.")
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			Species:     req.Species,
			DateOfBirth: dob,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.Error(w, http.StatusBadRequest, msgAllFieldsRequired)
			default:
				httpjson.ServerError(w, r, log, "create animal failed", err)
			}
			return
		}

		httpjson.Write(w, http.StatusOK, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales (admin)
// @Description Página de animales con owner sin expandir. Sin autenticación.
// @Tags admin
// @Produce json
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Tamaño de página (default 10)"
// @Success 200 {object} animalsPageResponse
// @Failure 500 {object} httpjson.ErrorBody "Server error."
// @Router /api/admin/animals [get]
func listAnimalsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := paging.FromRequest(r)

		items, total, err := svc.List(r.Context(), p)
		if err != nil {
			httpjson.ServerError(w, r, log, "list animals failed", err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		httpjson.Write(w, http.StatusOK, animalsPageResponse{
			Animals:     out,
			TotalPages:  p.TotalPages(total),
			CurrentPage: paging.CurrentPage(r),
		})
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:           a.ID,
		Name:         a.Name,
		HoursTrained: a.HoursTrained,
		Owner:        a.OwnerUserID,
		DateOfBirth:  a.DateOfBirth,
	}
}
