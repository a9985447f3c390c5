package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aupetservices/petcare-scheduler/internal/httpresp"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ListByProvider lista os serviços ativos de um prestador.
func (h *ServiceHandler) ListByProvider(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		httpresp.List(c, []models.Service{})
		return
	}

	var services []models.Service
	h.db.
		Where("provider_id = ? AND active = ?", providerID, true).
		Order("name ASC").
		Find(&services)

	httpresp.List(c, services)
}
