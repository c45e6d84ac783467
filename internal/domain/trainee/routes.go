package trainee

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/trainee", h.CreateTrainee)

	t := r.Group("/trainee/:id")
	{
		t.GET("", h.GetTrainee)
		t.PUT("", h.UpdateTrainee)
		t.POST("/progress", h.AddProgress)
	}
}
