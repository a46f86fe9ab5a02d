package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/httpresp"
	"github.com/graindock/grain-scheduler/internal/middleware"
	"github.com/graindock/grain-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List shows audit entries for warehouses the caller manages; platform
// admins see everything.
func (h *AuditLogsHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	q := h.db.Model(&models.AuditLog{})

	if role != models.RoleAdmin {
		q = q.Joins("JOIN warehouses ON warehouses.id = audit_logs.warehouse_id").
			Where("warehouses.manager_id = ?", userID)
	}

	var logs []models.AuditLog
	if err := q.Order("audit_logs.created_at DESC").Limit(200).Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.List(c, logs)
}
