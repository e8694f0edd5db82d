// File: handlers/service.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify/services/catalog"
	"bookify/utils"
)

// ServiceHandler exposes read-only catalog lookups.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Catalog: svc}
}

// GetHandler returns one catalog entry by id.
func (h *ServiceHandler) GetHandler(c *gin.Context) {
	svc, err := h.Catalog.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// ListByProviderHandler returns all catalog entries owned by a provider.
func (h *ServiceHandler) ListByProviderHandler(c *gin.Context) {
	services, err := h.Catalog.ListProviderServices(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services, "count": len(services)})
}
