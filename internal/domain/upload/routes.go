package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the upload endpoints and the read-only image route.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	t := r.Group("/trainee/:id")
	{
		t.POST("/upload", h.Upload)
		t.GET("/uploads", h.ListUploads)
	}

	files := h.service.URLPrefix() + "/:name"
	r.GET(files, h.ServeFile)
	r.HEAD(files, h.ServeFile)
}
