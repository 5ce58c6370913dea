package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pavallion/turfbook/internal/helpers"
	"github.com/pavallion/turfbook/internal/models"
	"github.com/pavallion/turfbook/internal/services"
)

func RequestBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var req services.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		receipt, err := bs.RequestBooking(c.Request.Context(), &req, claims)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(receipt, "Booking requested"))
	}
}

// Availability reports the occupied slot labels for a turf and date so the
// client can disable them at selection time.
func Availability(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		turfID := cleanID(c.Query("turf_id"))
		date := c.Query("date")

		occupied, err := bs.Availability(c.Request.Context(), turfID, date)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"turfId":   turfID,
			"date":     date,
			"occupied": occupied,
		}, ""))
	}
}

// QuoteSlots prices a selection before submission; slots are passed
// comma-separated.
func QuoteSlots(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		turfID := cleanID(c.Query("turf_id"))
		date := c.Query("date")

		var slots []string
		for _, s := range strings.Split(c.Query("slots"), ",") {
			if s = strings.TrimSpace(s); s != "" {
				slots = append(slots, s)
			}
		}

		quote, err := bs.QuoteSlots(c.Request.Context(), turfID, date, slots)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(quote, ""))
	}
}

// Recommendations suggests alternative free windows matching the requested
// selection's length when the preferred slots are taken; slots are passed
// comma-separated like the quote endpoint.
func Recommendations(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		turfID := cleanID(c.Query("turf_id"))
		date := c.Query("date")

		var slots []string
		for _, s := range strings.Split(c.Query("slots"), ",") {
			if s = strings.TrimSpace(s); s != "" {
				slots = append(slots, s)
			}
		}

		recommendations, err := bs.RecommendTimes(c.Request.Context(), turfID, date, slots)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"turfId":          turfID,
			"date":            date,
			"recommendations": recommendations,
		}, ""))
	}
}

func ListBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse pagination parameters
		limit := c.DefaultQuery("limit", "10")
		offset := c.DefaultQuery("offset", "0")
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
			return
		}
		offsetInt, err := strconv.Atoi(offset)
		if err != nil || offsetInt < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
			return
		}

		bookings, total, err := bs.ListBookings(c.Request.Context(), offsetInt, limitInt)
		if err != nil {
			respondError(c, err)
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(bookings, page, limitInt, total))
	}
}

func ListMyBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		bookings, err := bs.ListBookingsByUser(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func ConfirmBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := cleanID(c.Param("id"))
		if bookingID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("booking ID is required"))
			return
		}

		receipt, err := bs.ConfirmBooking(c.Request.Context(), bookingID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(receipt, "Booking confirmed"))
	}
}

func DeleteBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		bookingID := cleanID(c.Param("id"))
		if bookingID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("booking ID is required"))
			return
		}

		if err := bs.DeleteBooking(c.Request.Context(), bookingID, claims); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Booking deleted"))
	}
}

func currentClaims(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}

	claims, ok := userClaims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}
	return claims, true
}
