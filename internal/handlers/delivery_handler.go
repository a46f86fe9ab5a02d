package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/graindock/grain-scheduler/internal/audit"
	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/httpresp"
	"github.com/graindock/grain-scheduler/internal/middleware"
	"github.com/graindock/grain-scheduler/internal/models"
)

type DeliveryHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewDeliveryHandler(db *gorm.DB, audit *audit.Dispatcher) *DeliveryHandler {
	return &DeliveryHandler{db: db, audit: audit}
}

type CreateDeliveryRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

// Create records a delivery for an accepted or completed appointment.
// The receipt code is generated server-side; the price comes from the
// appointment's grain type and quantity.
func (h *DeliveryHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid delivery payload.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("GrainType").
		Preload("Zone").
		First(&ap, req.AppointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	status := domain.Status(ap.Status)
	if status != domain.StatusAccepted && status != domain.StatusCompleted {
		httperr.Forbidden(c, "invalid_state", "Delivery requires an accepted appointment.")
		return
	}

	var existing int64
	h.db.Model(&models.Delivery{}).
		Where("appointment_id = ?", ap.ID).
		Count(&existing)
	if existing > 0 {
		httperr.Conflict(c, "delivery_already_recorded", "Delivery already recorded for this appointment.")
		return
	}

	delivery := models.Delivery{
		AppointmentID:   ap.ID,
		ReceiptCode:     uuid.NewString(),
		TotalPriceCents: ap.GrainType.PriceCents * ap.RequestedQuantity,
	}

	if err := h.db.Create(&delivery).Error; err != nil {
		httperr.Internal(c, "failed_to_create_delivery", "Could not record delivery.")
		return
	}

	h.audit.Dispatch(audit.Event{
		WarehouseID: ap.Zone.WarehouseID,
		UserID:      &adminID,
		Action:      "delivery_recorded",
		Entity:      "delivery",
		EntityID:    &delivery.ID,
	})

	httpresp.Created(c, delivery)
}

func (h *DeliveryHandler) List(c *gin.Context) {
	actor := actorFrom(c)

	q := h.db.Preload("Appointment").Preload("Appointment.GrainType")

	if actor.Role == models.RoleFarmer {
		q = q.Joins("JOIN appointments ON appointments.id = deliveries.appointment_id").
			Where("appointments.farmer_id = ?", actor.UserID)
	} else if appointmentID := c.Query("appointment_id"); appointmentID != "" {
		q = q.Where("appointment_id = ?", appointmentID)
	}

	var deliveries []models.Delivery
	if err := q.Order("deliveries.created_at DESC").Find(&deliveries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_deliveries", "Could not list deliveries.")
		return
	}

	httpresp.List(c, deliveries)
}

func (h *DeliveryHandler) Get(c *gin.Context) {
	actor := actorFrom(c)

	var delivery models.Delivery
	if err := h.db.
		Preload("Appointment").
		Preload("Appointment.GrainType").
		First(&delivery, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "delivery_not_found", "Delivery not found.")
		return
	}

	if actor.Role == models.RoleFarmer && delivery.Appointment.FarmerID != actor.UserID {
		httperr.Forbidden(c, "not_owner", "Delivery belongs to another farmer.")
		return
	}

	httpresp.OK(c, delivery)
}
