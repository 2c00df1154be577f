package v1

import (
	"errors"
	"net/http"
	"path"

	"github.com/nzwalks/backend/internal/domain"
	"github.com/nzwalks/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) initRegionsRoutes(api *gin.RouterGroup) {
	regions := api.Group("/regions")
	{
		regions.GET("", h.requireRole(domain.RoleReader), h.getRegions)
		regions.GET("/:id", h.requireRole(domain.RoleReader), h.getRegionByID)
		regions.POST("", h.requireRole(domain.RoleWriter), h.createRegion)
		regions.PUT("/:id", h.requireRole(domain.RoleWriter), h.updateRegion)
		regions.DELETE("/:id", h.requireRole(domain.RoleWriter), h.deleteRegion)
	}
}

// @Summary Get Regions
// @Tags Regions
// @Description Get all regions
// @ModuleID getRegions
// @Accept  json
// @Produce  json
// @Success 200 {array} regionResponse
// @Failure 401
// @Failure 403
// @Failure 500 {object} ErrorStruct
// @Security BearerAuth
// @Router /regions [get]
func (h *Handler) getRegions(c *gin.Context) {
	regions, err := h.services.Regions.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("get regions failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, newRegionResponses(regions))
}

// @Summary Get Region By ID
// @Tags Regions
// @Description Get a single region
// @ModuleID getRegionByID
// @Accept  json
// @Produce  json
// @Param id path string true "Region ID (UUID)"
// @Success 200 {object} regionResponse
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500 {object} ErrorStruct
// @Security BearerAuth
// @Router /regions/{id} [get]
func (h *Handler) getRegionByID(c *gin.Context) {
	id, ok := parseRegionID(c)
	if !ok {
		return
	}

	region, err := h.services.Regions.GetByID(c.Request.Context(), id)
	if err != nil {
		h.regionErrorResponse(c, "get region failed", id, err)
		return
	}

	c.JSON(http.StatusOK, newRegionResponse(region))
}

// @Summary Create Region
// @Tags Regions
// @Description Create a new region
// @ModuleID createRegion
// @Accept  json
// @Produce  json
// @Param input body addRegionRequest true "Region"
// @Success 201 {object} regionResponse
// @Header 201 {string} Location "/api/regions/{id}"
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401
// @Failure 403
// @Failure 500 {object} ErrorStruct
// @Security BearerAuth
// @Router /regions [post]
func (h *Handler) createRegion(c *gin.Context) {
	var req addRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	region, err := h.services.Regions.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		logger.Error("create region failed", zap.Error(err), zap.String("code", req.Code))
		internalErrorResponse(c)
		return
	}

	logger.Info("region created",
		zap.Stringer("region_id", region.ID),
		zap.String("subject", getSubject(c)),
	)

	c.Header("Location", path.Join(c.FullPath(), region.ID.String()))
	c.JSON(http.StatusCreated, newRegionResponse(region))
}

// @Summary Update Region
// @Tags Regions
// @Description Replace code, name and image of an existing region
// @ModuleID updateRegion
// @Accept  json
// @Produce  json
// @Param id path string true "Region ID (UUID)"
// @Param input body updateRegionRequest true "Region"
// @Success 200 {object} regionResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500 {object} ErrorStruct
// @Security BearerAuth
// @Router /regions/{id} [put]
func (h *Handler) updateRegion(c *gin.Context) {
	id, ok := parseRegionID(c)
	if !ok {
		return
	}

	var req updateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	region, err := h.services.Regions.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		h.regionErrorResponse(c, "update region failed", id, err)
		return
	}

	c.JSON(http.StatusOK, newRegionResponse(region))
}

// @Summary Delete Region
// @Tags Regions
// @Description Delete a region and return its last known state
// @ModuleID deleteRegion
// @Accept  json
// @Produce  json
// @Param id path string true "Region ID (UUID)"
// @Success 200 {object} regionResponse
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500 {object} ErrorStruct
// @Security BearerAuth
// @Router /regions/{id} [delete]
func (h *Handler) deleteRegion(c *gin.Context) {
	id, ok := parseRegionID(c)
	if !ok {
		return
	}

	region, err := h.services.Regions.Delete(c.Request.Context(), id)
	if err != nil {
		h.regionErrorResponse(c, "delete region failed", id, err)
		return
	}

	logger.Info("region deleted",
		zap.Stringer("region_id", region.ID),
		zap.String("subject", getSubject(c)),
	)

	c.JSON(http.StatusOK, newRegionResponse(region))
}

// parseRegionID treats a non-UUID id like an unknown route: 404, no body.
func parseRegionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) regionErrorResponse(c *gin.Context, msg string, id uuid.UUID, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	logger.Error(msg, zap.Error(err), zap.Stringer("region_id", id))
	internalErrorResponse(c)
}
