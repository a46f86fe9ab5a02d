package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/httpresp"
	"github.com/graindock/grain-scheduler/internal/models"
	"github.com/graindock/grain-scheduler/internal/validators"
)

type TemplateHandler struct {
	db *gorm.DB
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{db: db}
}

// --------- Requests ---------

type CreateTemplateRequest struct {
	ZoneID          uint   `json:"zone_id" binding:"required"`
	DayOfWeek       *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	MaxAppointments int    `json:"max_appointments" binding:"omitempty,min=1"`
}

type UpdateTemplateRequest struct {
	DayOfWeek       *int    `json:"day_of_week" binding:"omitempty,min=0,max=6"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	MaxAppointments *int    `json:"max_appointments" binding:"omitempty,min=1"`
}

// --------- Handlers ---------

func (h *TemplateHandler) List(c *gin.Context) {
	q := h.db.Model(&models.TimeSlotTemplate{})

	if zoneID := c.Query("zone_id"); zoneID != "" {
		q = q.Where("zone_id = ?", zoneID)
	}
	if day := c.Query("day_of_week"); day != "" {
		q = q.Where("day_of_week = ?", day)
	}

	var templates []models.TimeSlotTemplate
	if err := q.Order("zone_id ASC, day_of_week ASC, start_time ASC").
		Find(&templates).Error; err != nil {
		httperr.Internal(c, "failed_to_list_templates", "Could not list templates.")
		return
	}

	httpresp.List(c, templates)
}

func (h *TemplateHandler) Get(c *gin.Context) {
	var tpl models.TimeSlotTemplate
	if err := h.db.First(&tpl, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "template_not_found", "Template not found.")
		return
	}
	httpresp.OK(c, tpl)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid template payload.")
		return
	}

	if !validators.IsClockRangeValid(req.StartTime, req.EndTime) {
		httperr.BadRequest(c, "invalid_time_range", "end_time must be after start_time.")
		return
	}

	var zone models.StorageZone
	if err := h.db.First(&zone, req.ZoneID).Error; err != nil {
		httperr.NotFound(c, "zone_not_found", "Storage zone not found.")
		return
	}

	maxAppointments := req.MaxAppointments
	if maxAppointments == 0 {
		maxAppointments = 1
	}

	tpl := models.TimeSlotTemplate{
		ZoneID:          req.ZoneID,
		DayOfWeek:       *req.DayOfWeek,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		MaxAppointments: maxAppointments,
	}

	if err := h.db.Create(&tpl).Error; err != nil {
		httperr.Internal(c, "failed_to_create_template", "Could not create template.")
		return
	}

	httpresp.Created(c, tpl)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	var tpl models.TimeSlotTemplate
	if err := h.db.First(&tpl, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "template_not_found", "Template not found.")
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid template payload.")
		return
	}

	if req.DayOfWeek != nil {
		tpl.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		tpl.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		tpl.EndTime = *req.EndTime
	}
	if req.MaxAppointments != nil {
		tpl.MaxAppointments = *req.MaxAppointments
	}

	if !validators.IsClockRangeValid(tpl.StartTime, tpl.EndTime) {
		httperr.BadRequest(c, "invalid_time_range", "end_time must be after start_time.")
		return
	}

	if err := h.db.Save(&tpl).Error; err != nil {
		httperr.Internal(c, "failed_to_update_template", "Could not update template.")
		return
	}

	httpresp.OK(c, tpl)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.TimeSlotTemplate{}, c.Param("id"))
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_template", "Could not delete template.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "template_not_found", "Template not found.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
