package handlers

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graindock/grain-scheduler/internal/cache"
	"github.com/graindock/grain-scheduler/internal/geo"
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/httpresp"
	"github.com/graindock/grain-scheduler/internal/middleware"
	"github.com/graindock/grain-scheduler/internal/models"
)

type WarehouseHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewWarehouseHandler(db *gorm.DB, cache *cache.Cache) *WarehouseHandler {
	return &WarehouseHandler{db: db, cache: cache}
}

// --------- Requests ---------

type CreateWarehouseRequest struct {
	Name      string  `json:"name" binding:"required"`
	Location  string  `json:"location" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type UpdateWarehouseRequest struct {
	Name      *string  `json:"name"`
	Location  *string  `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Status    *string  `json:"status" binding:"omitempty,oneof=active not_active"`
}

// --------- CRUD ---------

func (h *WarehouseHandler) List(c *gin.Context) {
	var warehouses []models.Warehouse
	q := h.db.Preload("Manager")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Order("id ASC").Find(&warehouses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_warehouses", "Could not list warehouses.")
		return
	}

	httpresp.List(c, warehouses)
}

func (h *WarehouseHandler) Get(c *gin.Context) {
	var warehouse models.Warehouse
	if err := h.db.Preload("Manager").First(&warehouse, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "warehouse_not_found", "Warehouse not found.")
		return
	}
	httpresp.OK(c, warehouse)
}

func (h *WarehouseHandler) Create(c *gin.Context) {
	managerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid warehouse payload.")
		return
	}

	warehouse := models.Warehouse{
		ManagerID: managerID,
		Name:      req.Name,
		Location:  req.Location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    models.WarehouseActive,
	}

	if err := h.db.Create(&warehouse).Error; err != nil {
		httperr.Internal(c, "failed_to_create_warehouse", "Could not create warehouse.")
		return
	}

	httpresp.Created(c, warehouse)
}

func (h *WarehouseHandler) Update(c *gin.Context) {
	managerID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var warehouse models.Warehouse
	if err := h.db.First(&warehouse, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "warehouse_not_found", "Warehouse not found.")
		return
	}

	if role != models.RoleAdmin && warehouse.ManagerID != managerID {
		httperr.Forbidden(c, "not_warehouse_manager", "You do not manage this warehouse.")
		return
	}

	var req UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid warehouse payload.")
		return
	}

	if req.Name != nil {
		warehouse.Name = *req.Name
	}
	if req.Location != nil {
		warehouse.Location = *req.Location
	}
	if req.Latitude != nil {
		warehouse.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		warehouse.Longitude = *req.Longitude
	}
	if req.Status != nil {
		warehouse.Status = *req.Status
	}

	if err := h.db.Save(&warehouse).Error; err != nil {
		httperr.Internal(c, "failed_to_update_warehouse", "Could not update warehouse.")
		return
	}

	httpresp.OK(c, warehouse)
}

func (h *WarehouseHandler) Delete(c *gin.Context) {
	managerID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var warehouse models.Warehouse
	if err := h.db.First(&warehouse, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "warehouse_not_found", "Warehouse not found.")
		return
	}

	if role != models.RoleAdmin && warehouse.ManagerID != managerID {
		httperr.Forbidden(c, "not_warehouse_manager", "You do not manage this warehouse.")
		return
	}

	if err := h.db.Delete(&warehouse).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_warehouse", "Could not delete warehouse.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

// --------- Nearest ---------

type nearestWarehouse struct {
	Warehouse  models.Warehouse     `json:"warehouse"`
	DistanceKm float64              `json:"distance_km"`
	Zones      []models.StorageZone `json:"zones"`
}

// Nearest returns active warehouses sorted by haversine distance from
// the caller, keeping only those with active zones for the requested
// grain type. Results are cached briefly: warehouse geography changes
// rarely, slot state is not part of the response.
func (h *WarehouseHandler) Nearest(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("longitude"), 64)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_coordinates", "latitude and longitude are required.")
		return
	}

	grainTypeID, _ := strconv.ParseUint(c.DefaultQuery("grain_type_id", "0"), 10, 64)
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > 50 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("nearest:%.3f:%.3f:%d:%d", lat, lon, grainTypeID, limit)
	var cached []nearestWarehouse
	if h.cache.Get(c.Request.Context(), cacheKey, &cached) {
		httpresp.List(c, cached)
		return
	}

	var warehouses []models.Warehouse
	if err := h.db.Where("status = ?", models.WarehouseActive).Find(&warehouses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_warehouses", "Could not list warehouses.")
		return
	}

	results := []nearestWarehouse{}
	for _, w := range warehouses {
		zoneQ := h.db.Where(
			"warehouse_id = ? AND status = ?", w.ID, models.ZoneActive,
		)
		if grainTypeID != 0 {
			zoneQ = zoneQ.Where("grain_type_id = ?", grainTypeID)
		}

		var zones []models.StorageZone
		if err := zoneQ.Find(&zones).Error; err != nil || len(zones) == 0 {
			continue
		}

		results = append(results, nearestWarehouse{
			Warehouse:  w,
			DistanceKm: geo.Distance(lat, lon, w.Latitude, w.Longitude),
			Zones:      zones,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	if len(results) > limit {
		results = results[:limit]
	}

	h.cache.Set(c.Request.Context(), cacheKey, results)
	httpresp.List(c, results)
}
