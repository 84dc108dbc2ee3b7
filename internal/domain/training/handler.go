package training

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

const (
	msgAllFieldsRequired = "All fields are required."
	msgAnimalNotFound    = "Animal not found."
	msgNotOwner          = "This animal does not belong to the specified user."
)

// RegisterRoutes monta POST /training detrás de requireAuth.
func RegisterRoutes(r chi.Router, svc *Service, requireAuth func(http.Handler) http.Handler, log logger.Logger) {
	r.With(requireAuth).Post("/training", createLogHandler(svc, log))
}

// RegisterAdminRoutes monta el listado paginado (sin auth).
func RegisterAdminRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/training", listLogsHandler(svc, log))
}

// createLogRequest es el cuerpo para registrar una sesión. hours = 0 cuenta como faltante.
type createLogRequest struct {
	AnimalID    string  `json:"animalId" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Hours       float64 `json:"hours" validate:"required"`
}

// logResponse es el documento de la sesión; animal y user son IDs sin expandir.
type logResponse struct {
	ID               string    `json:"_id"`
	Date             time.Time `json:"date"`
	Description      string    `json:"description"`
	Hours            float64   `json:"hours"`
	Animal           string    `json:"animal"`
	User             string    `json:"user"`
	TrainingLogVideo string    `json:"trainingLogVideo,omitempty"`
}

type logsPageResponse struct {
	TrainingLogs []logResponse `json:"trainingLogs"`
	TotalPages   int           `json:"totalPages"`
	CurrentPage  any           `json:"currentPage"`
}

// createLogHandler godoc
// @Summary Registrar sesión de entrenamiento
// @Description Registra una sesión para un animal del usuario autenticado. Animal inexistente o de otro dueño => 400.
// @Tags training
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body createLogRequest true "Datos de la sesión"
// @Success 200 {object} logResponse
// @Failure 400 {object} httpjson.ErrorBody "All fields are required. / Animal not found. / This animal does not belong to the specified user."
// @Failure 401 {object} httpjson.ErrorBody "Access denied, token missing."
// @Failure 403 {object} httpjson.ErrorBody "Invalid token."
// @Failure 500 {object} httpjson.ErrorBody "Server error."
// @Router /api/training [post]
func createLogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, middleware.MsgTokenMissing)
			return
		}

		var req createLogRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, msgAllFieldsRequired)
			return
		}

		l, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			AnimalID:    req.AnimalID,
			Description: req.Description,
			Hours:       req.Hours,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.Error(w, http.StatusBadRequest, msgAllFieldsRequired)
			case errors.Is(err, ErrAnimalNotFound):
				httpjson.Error(w, http.StatusBadRequest, msgAnimalNotFound)
			case errors.Is(err, ErrNotOwner):
				httpjson.Error(w, http.StatusBadRequest, msgNotOwner)
			default:
				httpjson.ServerError(w, r, log, "create training log failed", err)
			}
			return
		}

		httpjson.Write(w, http.StatusOK, toLogResponse(l))
	}
}

// listLogsHandler godoc
// @Summary Listar sesiones (admin)
// @Description Página de sesiones con animal/user sin expandir. Sin autenticación.
// @Tags admin
// @Produce json
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Tamaño de página (default 10)"
// @Success 200 {object} logsPageResponse
// @Failure 500 {object} httpjson.ErrorBody "Server error."
// @Router /api/admin/training [get]
func listLogsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := paging.FromRequest(r)

		items, total, err := svc.List(r.Context(), p)
		if err != nil {
			httpjson.ServerError(w, r, log, "list training logs failed", err)
			return
		}

		out := make([]logResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toLogResponse(l))
		}

		httpjson.Write(w, http.StatusOK, logsPageResponse{
			TrainingLogs: out,
			TotalPages:   p.TotalPages(total),
			CurrentPage:  paging.CurrentPage(r),
		})
	}
}

func toLogResponse(l Log) logResponse {
	return logResponse{
		ID:               l.ID,
		Date:             l.Date,
		Description:      l.Description,
		Hours:            l.Hours,
		Animal:           l.AnimalID,
		User:             l.UserID,
		TrainingLogVideo: l.VideoURL,
	}
}
