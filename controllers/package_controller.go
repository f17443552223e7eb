package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/services"
	"github.com/vishalpatil-45/Adventour/utils"
)

// PackageController serves the catalog endpoints
type PackageController struct {
	service services.CatalogService
}

// NewPackageController creates a PackageController
func NewPackageController(service services.CatalogService) *PackageController {
	return &PackageController{service: service}
}

// ListPackages handles GET /api/packages
func (ctrl *PackageController) ListPackages(c *gin.Context) {
	req, ok := searchRequestFromQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.service.ListPackages(c.Request.Context(), req))
}

// Search handles GET /api/search
func (ctrl *PackageController) Search(c *gin.Context) {
	req, ok := searchRequestFromQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ctrl.service.Search(c.Request.Context(), req))
}

// GetPackage handles GET /api/packages/:id
func (ctrl *PackageController) GetPackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid package ID")
		return
	}

	pkg, err := ctrl.service.GetPackage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load package")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// ListLocations handles GET /api/locations
func (ctrl *PackageController) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.service.ListLocations(c.Request.Context()))
}

// LocationPackages handles GET /api/locations/:slug/packages
func (ctrl *PackageController) LocationPackages(c *gin.Context) {
	location, packages, err := ctrl.service.PackagesByLocation(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to load packages")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"location": location,
		"packages": packages,
	})
}

// searchRequestFromQuery reads the catalog filters. Prices take the leading
// integer of the value; a value with none is rejected.
func searchRequestFromQuery(c *gin.Context) (dto.SearchRequest, bool) {
	req := dto.SearchRequest{
		Query:    c.Query("q"),
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Location: c.Query("location"),
		SortBy:   c.Query("sort"),
	}

	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"minPrice", &req.MinPrice},
		{"maxPrice", &req.MaxPrice},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		n, ok := utils.ParseLeadingInt(raw)
		if !ok {
			badRequest(c, "Invalid "+p.name)
			return req, false
		}
		*p.dst = &n
	}

	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(c, "Invalid rating")
			return req, false
		}
		req.MinRating = rating
	}
	return req, true
}
