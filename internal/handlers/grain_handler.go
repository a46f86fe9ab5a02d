package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/httpresp"
	"github.com/graindock/grain-scheduler/internal/models"
)

type GrainHandler struct {
	db *gorm.DB
}

func NewGrainHandler(db *gorm.DB) *GrainHandler {
	return &GrainHandler{db: db}
}

type CreateGrainRequest struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required,gt=0"`
}

type UpdateGrainRequest struct {
	Name       *string `json:"name"`
	PriceCents *int64  `json:"price_cents" binding:"omitempty,gt=0"`
}

func (h *GrainHandler) List(c *gin.Context) {
	var grains []models.Grain
	if err := h.db.Order("id ASC").Find(&grains).Error; err != nil {
		httperr.Internal(c, "failed_to_list_grains", "Could not list grain types.")
		return
	}
	httpresp.List(c, grains)
}

func (h *GrainHandler) Get(c *gin.Context) {
	var grain models.Grain
	if err := h.db.First(&grain, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "grain_not_found", "Grain type not found.")
		return
	}
	httpresp.OK(c, grain)
}

func (h *GrainHandler) Create(c *gin.Context) {
	var req CreateGrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid grain payload.")
		return
	}

	grain := models.Grain{
		Name:       req.Name,
		PriceCents: req.PriceCents,
	}

	if err := h.db.Create(&grain).Error; err != nil {
		httperr.Internal(c, "failed_to_create_grain", "Could not create grain type.")
		return
	}

	httpresp.Created(c, grain)
}

func (h *GrainHandler) Update(c *gin.Context) {
	var grain models.Grain
	if err := h.db.First(&grain, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "grain_not_found", "Grain type not found.")
		return
	}

	var req UpdateGrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid grain payload.")
		return
	}

	if req.Name != nil {
		grain.Name = *req.Name
	}
	if req.PriceCents != nil {
		grain.PriceCents = *req.PriceCents
	}

	if err := h.db.Save(&grain).Error; err != nil {
		httperr.Internal(c, "failed_to_update_grain", "Could not update grain type.")
		return
	}

	httpresp.OK(c, grain)
}

func (h *GrainHandler) Delete(c *gin.Context) {
	var grain models.Grain
	if err := h.db.First(&grain, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "grain_not_found", "Grain type not found.")
		return
	}

	if err := h.db.Delete(&grain).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_grain", "Could not delete grain type.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
