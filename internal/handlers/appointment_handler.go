package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/dto"
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/httpresp"
	"github.com/graindock/grain-scheduler/internal/middleware"
	"github.com/graindock/grain-scheduler/internal/models"
	ucBooking "github.com/graindock/grain-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db      *gorm.DB
	book    *ucBooking.BookSlot
	accept  *ucBooking.AcceptAppointment
	refuse  *ucBooking.RefuseAppointment
	cancel  *ucBooking.CancelAppointment
	confirm *ucBooking.ConfirmAttendance
	list    *ucBooking.ListAppointments
}

func NewAppointmentHandler(
	db *gorm.DB,
	book *ucBooking.BookSlot,
	accept *ucBooking.AcceptAppointment,
	refuse *ucBooking.RefuseAppointment,
	cancel *ucBooking.CancelAppointment,
	confirm *ucBooking.ConfirmAttendance,
	list *ucBooking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:      db,
		book:    book,
		accept:  accept,
		refuse:  refuse,
		cancel:  cancel,
		confirm: confirm,
		list:    list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ZoneID            uint  `json:"zone_id" binding:"required"`
	GrainTypeID       uint  `json:"grain_type_id" binding:"required"`
	TimeSlotID        uint  `json:"timeslot_id" binding:"required"`
	RequestedQuantity int64 `json:"requested_quantity" binding:"required,gt=0"`
}

// ======================================================
// CREATE (booking)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	farmerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), domain.BookSlotInput{
		FarmerID:          farmerID,
		ZoneID:            req.ZoneID,
		GrainTypeID:       req.GrainTypeID,
		TimeSlotID:        req.TimeSlotID,
		RequestedQuantity: req.RequestedQuantity,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	actor := actorFrom(c)

	status := domain.Status(c.Query("status"))

	aps, err := h.list.Execute(c.Request.Context(), actor, status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	views := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		views = append(views, dto.FromAppointment(ap))
	}

	httpresp.List(c, views)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	actor := actorFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("GrainType").
		Preload("TimeSlot").
		Preload("Zone").
		Preload("Zone.Warehouse").
		First(&ap, uint(id)).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	switch actor.Role {
	case models.RoleFarmer:
		if ap.FarmerID != actor.UserID {
			httperr.Forbidden(c, "not_owner", "Only the owning farmer may view this.")
			return
		}
	case models.RoleWarehouseAdmin:
		if ap.Zone.Warehouse.ManagerID != actor.UserID {
			httperr.Forbidden(c, "not_zone_admin", "Appointment belongs to another warehouse.")
			return
		}
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Accept(c *gin.Context) {
	h.transition(c, h.accept.Execute)
}

func (h *AppointmentHandler) Refuse(c *gin.Context) {
	h.transition(c, h.refuse.Execute)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute)
}

func (h *AppointmentHandler) ConfirmAttendance(c *gin.Context) {
	h.transition(c, h.confirm.Execute)
}

type transitionFunc func(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (*models.Appointment, error)

func (h *AppointmentHandler) transition(c *gin.Context, exec transitionFunc) {
	actor := actorFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := exec(c.Request.Context(), actor, uint(id))
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Could not update appointment.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// HELPERS
// ======================================================

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID: c.MustGet(middleware.ContextUserID).(uint),
		Role:   c.MustGet(middleware.ContextUserRole).(string),
	}
}
