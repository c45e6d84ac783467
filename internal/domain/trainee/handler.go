package trainee

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"traineetracker/internal/pkg/response"
	"traineetracker/internal/pkg/utils"
	"traineetracker/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetTrainee handles GET /trainee/:id
func (h *Handler) GetTrainee(c *gin.Context) {
	id, ok := utils.PathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid trainee id")
		return
	}

	profile, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// CreateTrainee handles POST /trainee
func (h *Handler) CreateTrainee(c *gin.Context) {
	var req CreateTraineeRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, IDResponse{ID: id})
}

// UpdateTrainee handles PUT /trainee/:id
func (h *Handler) UpdateTrainee(c *gin.Context) {
	id, ok := utils.PathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid trainee id")
		return
	}

	// No body means every field is omitted, so all of them are cleared.
	var req UpdateTraineeRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, UpdatedResponse{Updated: true})
}

// AddProgress handles POST /trainee/:id/progress
func (h *Handler) AddProgress(c *gin.Context) {
	id, ok := utils.PathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid trainee id")
		return
	}

	var req AddProgressRequest
	if !bindJSON(c, &req) {
		return
	}

	entryID, err := h.service.AddProgress(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, IDResponse{ID: entryID})
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return validate(c, req)
}

// bindOptionalJSON binds an absent body as {}.
func bindOptionalJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return validate(c, req)
}

func validate(c *gin.Context, req interface{}) bool {
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", errs)
		return false
	}
	return true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTraineeNotFound):
		response.Error(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrEmailExists):
		response.Error(c, http.StatusConflict, "Email exists")
	default:
		response.Abort(c, http.StatusInternalServerError, "DB error", err)
	}
}
