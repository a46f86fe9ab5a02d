package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/httpresp"
	"github.com/graindock/grain-scheduler/internal/middleware"
	"github.com/graindock/grain-scheduler/internal/models"
)

type ZoneHandler struct {
	db *gorm.DB
}

func NewZoneHandler(db *gorm.DB) *ZoneHandler {
	return &ZoneHandler{db: db}
}

// --------- Requests ---------

type CreateZoneRequest struct {
	WarehouseID   uint   `json:"warehouse_id" binding:"required"`
	GrainTypeID   uint   `json:"grain_type_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	TotalCapacity int64  `json:"total_capacity" binding:"required,gt=0"`
}

type UpdateZoneRequest struct {
	Name          *string `json:"name"`
	GrainTypeID   *uint   `json:"grain_type_id"`
	TotalCapacity *int64  `json:"total_capacity" binding:"omitempty,gt=0"`
	Status        *string `json:"status" binding:"omitempty,oneof=active not_active"`
}

// --------- Handlers ---------

func (h *ZoneHandler) List(c *gin.Context) {
	q := h.db.Preload("GrainType")

	if warehouseID := c.Query("warehouse_id"); warehouseID != "" {
		q = q.Where("warehouse_id = ?", warehouseID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var zones []models.StorageZone
	if err := q.Order("id ASC").Find(&zones).Error; err != nil {
		httperr.Internal(c, "failed_to_list_zones", "Could not list storage zones.")
		return
	}

	httpresp.List(c, zones)
}

func (h *ZoneHandler) Get(c *gin.Context) {
	var zone models.StorageZone
	if err := h.db.Preload("GrainType").Preload("Warehouse").
		First(&zone, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "zone_not_found", "Storage zone not found.")
		return
	}
	httpresp.OK(c, zone)
}

func (h *ZoneHandler) Create(c *gin.Context) {
	var req CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid zone payload.")
		return
	}

	warehouse, ok := h.managedWarehouse(c, req.WarehouseID)
	if !ok {
		return
	}

	var grain models.Grain
	if err := h.db.First(&grain, req.GrainTypeID).Error; err != nil {
		httperr.NotFound(c, "grain_not_found", "Grain type not found.")
		return
	}

	zone := models.StorageZone{
		WarehouseID:       warehouse.ID,
		GrainTypeID:       req.GrainTypeID,
		Name:              req.Name,
		TotalCapacity:     req.TotalCapacity,
		AvailableCapacity: req.TotalCapacity,
		Status:            models.ZoneActive,
	}

	if err := h.db.Create(&zone).Error; err != nil {
		httperr.Internal(c, "failed_to_create_zone", "Could not create storage zone.")
		return
	}

	httpresp.Created(c, zone)
}

func (h *ZoneHandler) Update(c *gin.Context) {
	var zone models.StorageZone
	if err := h.db.First(&zone, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "zone_not_found", "Storage zone not found.")
		return
	}

	if _, ok := h.managedWarehouse(c, zone.WarehouseID); !ok {
		return
	}

	var req UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid zone payload.")
		return
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.GrainTypeID != nil {
		zone.GrainTypeID = *req.GrainTypeID
	}
	if req.TotalCapacity != nil {
		reserved := zone.TotalCapacity - zone.AvailableCapacity
		if *req.TotalCapacity < reserved {
			httperr.Forbidden(c, "capacity_below_reserved", "Total capacity cannot drop below the reserved amount.")
			return
		}
		zone.TotalCapacity = *req.TotalCapacity
		zone.AvailableCapacity = *req.TotalCapacity - reserved
	}
	if req.Status != nil {
		zone.Status = *req.Status
	}

	if err := h.db.Save(&zone).Error; err != nil {
		httperr.Internal(c, "failed_to_update_zone", "Could not update storage zone.")
		return
	}

	httpresp.OK(c, zone)
}

func (h *ZoneHandler) Delete(c *gin.Context) {
	var zone models.StorageZone
	if err := h.db.First(&zone, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "zone_not_found", "Storage zone not found.")
		return
	}

	if _, ok := h.managedWarehouse(c, zone.WarehouseID); !ok {
		return
	}

	if err := h.db.Delete(&zone).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_zone", "Could not delete storage zone.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

// managedWarehouse loads the warehouse and rejects callers that neither
// manage it nor hold the admin role. Writes the response on failure.
func (h *ZoneHandler) managedWarehouse(c *gin.Context, warehouseID uint) (*models.Warehouse, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var warehouse models.Warehouse
	if err := h.db.First(&warehouse, warehouseID).Error; err != nil {
		httperr.NotFound(c, "warehouse_not_found", "Warehouse not found.")
		return nil, false
	}

	if role != models.RoleAdmin && warehouse.ManagerID != userID {
		httperr.Forbidden(c, "not_warehouse_manager", "You do not manage this warehouse.")
		return nil, false
	}

	return &warehouse, true
}
