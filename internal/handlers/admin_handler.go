package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graindock/grain-scheduler/internal/httpresp"
	"github.com/graindock/grain-scheduler/internal/models"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) Statistics(c *gin.Context) {
	var users, warehouses, appointments, deliveries int64

	h.db.Model(&models.User{}).Count(&users)
	h.db.Model(&models.Warehouse{}).Count(&warehouses)
	h.db.Model(&models.Appointment{}).Count(&appointments)
	h.db.Model(&models.Delivery{}).Count(&deliveries)

	httpresp.OK(c, gin.H{
		"data": gin.H{
			"total_users":        users,
			"total_warehouses":   warehouses,
			"total_appointments": appointments,
			"total_deliveries":   deliveries,
		},
	})
}
