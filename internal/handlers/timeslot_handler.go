package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/httpresp"
	"github.com/graindock/grain-scheduler/internal/models"
	ucBooking "github.com/graindock/grain-scheduler/internal/usecase/booking"
)

type TimeSlotHandler struct {
	db           *gorm.DB
	availability *ucBooking.GetAvailability
	generate     *ucBooking.GenerateSlots
}

func NewTimeSlotHandler(
	db *gorm.DB,
	availability *ucBooking.GetAvailability,
	generate *ucBooking.GenerateSlots,
) *TimeSlotHandler {
	return &TimeSlotHandler{
		db:           db,
		availability: availability,
		generate:     generate,
	}
}

// --------- Handlers ---------

func (h *TimeSlotHandler) ListByZone(c *gin.Context) {
	zoneID := c.Param("id")

	var zone models.StorageZone
	if err := h.db.First(&zone, zoneID).Error; err != nil {
		httperr.NotFound(c, "zone_not_found", "Storage zone not found.")
		return
	}

	var slots []models.TimeSlot
	if err := h.db.
		Where("zone_id = ?", zone.ID).
		Order("start_at ASC").
		Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_timeslots", "Could not list time slots.")
		return
	}

	httpresp.List(c, slots)
}

func (h *TimeSlotHandler) ListAvailable(c *gin.Context) {
	zoneID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_zone_id", "Invalid zone id.")
		return
	}

	grainTypeID, _ := strconv.ParseUint(c.DefaultQuery("grain_type_id", "0"), 10, 64)

	views, err := h.availability.Execute(
		c.Request.Context(),
		uint(zoneID),
		uint(grainTypeID),
	)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Could not load available slots.")
		return
	}

	httpresp.List(c, views)
}

type GenerateSlotsRequest struct {
	HorizonDays int `json:"horizon_days" binding:"required,min=1,max=31"`
}

func (h *TimeSlotHandler) Generate(c *gin.Context) {
	var req GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "horizon_days must be between 1 and 31.")
		return
	}

	created, err := h.generate.Execute(c.Request.Context(), req.HorizonDays)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_slots", "Slot generation failed.")
		return
	}

	c.JSON(201, gin.H{
		"created": created,
		"count":   len(created),
	})
}

func (h *TimeSlotHandler) Get(c *gin.Context) {
	var slot models.TimeSlot
	if err := h.db.First(&slot, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "timeslot_not_found", "Time slot not found.")
		return
	}
	httpresp.OK(c, slot)
}

func (h *TimeSlotHandler) Delete(c *gin.Context) {
	var slot models.TimeSlot
	if err := h.db.First(&slot, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "timeslot_not_found", "Time slot not found.")
		return
	}

	if err := h.db.Delete(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_timeslot", "Could not delete time slot.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
