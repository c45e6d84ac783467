package upload

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"traineetracker/internal/pkg/response"
	"traineetracker/internal/pkg/utils"
	"traineetracker/internal/pkg/validator"
	"traineetracker/internal/storage"
)

// multipartOverhead is the slack allowed on top of the image size for the
// other form fields and part headers.
const multipartOverhead = 1 << 20

// Handler handles before/after image uploads for trainees.
type Handler struct {
	service *Service
	store   storage.Store
}

func NewHandler(service *Service, store storage.Store) *Handler {
	return &Handler{service: service, store: store}
}

// Upload handles POST /trainee/:id/upload (multipart: image, type)
func (h *Handler) Upload(c *gin.Context) {
	traineeID, ok := utils.PathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid trainee id")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.service.MaxSize()+multipartOverhead)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(c, ErrFileTooLarge)
			return
		}
		handleError(c, ErrNoFile)
		return
	}

	form := UploadForm{Type: strings.TrimSpace(c.PostForm("type"))}
	if form.Type == "" {
		form.Type = string(KindBefore)
	}
	if errs := validator.Validate(form); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	upload, err := h.service.Upload(c.Request.Context(), traineeID, Kind(form.Type), fileHeader)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, UploadResponse{OK: true, FilePath: upload.FilePath})
}

// ListUploads handles GET /trainee/:id/uploads
func (h *Handler) ListUploads(c *gin.Context) {
	traineeID, ok := utils.PathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid trainee id")
		return
	}

	uploads, err := h.service.ListByTrainee(c.Request.Context(), traineeID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Uploads: uploads})
}

// ServeFile handles GET <prefix>/:name, read-only access to stored images.
func (h *Handler) ServeFile(c *gin.Context) {
	h.store.Serve(c, c.Param("name"))
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoFile):
		response.Error(c, http.StatusBadRequest, "No file")
	case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidMimeType):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, ErrStorage):
		response.Abort(c, http.StatusInternalServerError, "Upload failed", err)
	default:
		response.Abort(c, http.StatusInternalServerError, "DB error", err)
	}
}
