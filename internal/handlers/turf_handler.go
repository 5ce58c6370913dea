package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pavallion/turfbook/internal/models"
	"github.com/pavallion/turfbook/internal/services"
)

// CreateTurfRequest wraps the turf fields plus an optional image to push to
// Cloudinary before the record is saved.
type CreateTurfRequest struct {
	models.Turf
	ImageFile string `json:"imageFile,omitempty"`
}

func CreateTurf(ts *services.TurfService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTurfRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := ts.CreateTurf(c.Request.Context(), &req.Turf, req.ImageFile)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Turf created successfully"))
	}
}

func ListTurfs(ts *services.TurfService) gin.HandlerFunc {
	return func(c *gin.Context) {
		turfs, err := ts.ListTurfs(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(turfs, ""))
	}
}

func GetTurf(ts *services.TurfService) gin.HandlerFunc {
	return func(c *gin.Context) {
		turfID := cleanID(c.Param("id"))
		if turfID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("turf ID is required"))
			return
		}

		turf, err := ts.GetTurf(c.Request.Context(), turfID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(turf, ""))
	}
}

func UpdateTurf(ts *services.TurfService) gin.HandlerFunc {
	return func(c *gin.Context) {
		turfID := cleanID(c.Param("id"))
		if turfID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("turf ID is required"))
			return
		}

		var turf models.Turf
		if err := c.ShouldBindJSON(&turf); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		updated, err := ts.UpdateTurf(c.Request.Context(), turfID, &turf)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Turf updated successfully"))
	}
}

func DeleteTurf(ts *services.TurfService) gin.HandlerFunc {
	return func(c *gin.Context) {
		turfID := cleanID(c.Param("id"))
		if turfID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("turf ID is required"))
			return
		}

		if err := ts.DeleteTurf(c.Request.Context(), turfID); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Turf deleted successfully"))
	}
}

// cleanID trims spaces and surrounding quotes which may occur when clients
// pass values as JSON strings or templates.
func cleanID(id string) string {
	id = strings.TrimSpace(id)
	return strings.Trim(id, "\"'")
}
