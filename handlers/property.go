package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Dave-funds/betahome/models"
	"github.com/Dave-funds/betahome/repository"
	"github.com/Dave-funds/betahome/uploader"
	"github.com/Dave-funds/betahome/utils"
)

const (
	recentCacheKey   = "properties:recent"
	featuredCacheKey = "properties:featured"
	cacheTTL         = 5 * time.Minute

	featuredPerType = 3
	recentCount     = 3
	similarCount    = 3
)

type PropertyController struct {
	repo     repository.PropertyRepository
	uploader uploader.Uploader
	cache    *utils.Cache
}

func NewPropertyController(repo repository.PropertyRepository, up uploader.Uploader, cache *utils.Cache) *PropertyController {
	return &PropertyController{
		repo:     repo,
		uploader: up,
		cache:    cache,
	}
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	req, err := bindCreateRequest(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, err.Error())
	}
	if err := req.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, err.Error())
	}

	files := collectAssetFiles(c)
	if files.Video == nil {
		return fail(c, http.StatusBadRequest, KindValidation, "video file is required")
	}

	urls, err := uploadAssets(context.Background(), pc.uploader, files)
	if err != nil {
		slog.Error("asset upload failed", "error", err)
		return failWrite(c, err)
	}

	property := req.ToProperty()
	property.Media = models.Media{Images: urls.Images, Video: urls.Video}
	property.SalesSupport.Avatar = urls.Avatar

	created, err := pc.repo.Create(context.Background(), property)
	if err != nil {
		slog.Error("failed to create property", "error", err)
		return failWrite(c, err)
	}

	pc.cache.Invalidate(context.Background(), recentCacheKey, featuredCacheKey)

	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"property": created,
	})
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	query := repository.ListQuery{
		Location:     c.QueryParam("location"),
		PropertyType: c.QueryParam("type"),
		SortBy:       c.QueryParam("sort"),
	}
	if b := c.QueryParam("bedroom"); b != "" {
		if num, err := strconv.Atoi(b); err == nil {
			query.Bedroom = &num
		}
	}

	properties, err := pc.repo.Find(context.Background(), query)
	if err != nil {
		slog.Error("failed to list properties", "error", err)
		return fail(c, http.StatusNotFound, KindPersistence, "Failed to fetch properties")
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"properties": properties,
	})
}

func (pc *PropertyController) RecentProperties(c echo.Context) error {
	var properties []models.Property
	if pc.cache.Get(context.Background(), recentCacheKey, &properties) {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "properties": properties})
	}

	properties, err := pc.repo.Find(context.Background(), repository.ListQuery{Limit: recentCount})
	if err != nil {
		slog.Error("failed to fetch recent properties", "error", err)
		return fail(c, http.StatusNotFound, KindPersistence, "Failed to fetch recent properties")
	}

	// Newest three, presented oldest first.
	for i, j := 0, len(properties)-1; i < j; i, j = i+1, j-1 {
		properties[i], properties[j] = properties[j], properties[i]
	}
	if properties == nil {
		properties = []models.Property{}
	}

	pc.cache.Set(context.Background(), recentCacheKey, properties, cacheTTL)

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"properties": properties,
	})
}

func (pc *PropertyController) FeaturedProperties(c echo.Context) error {
	var featured []models.Property
	if pc.cache.Get(context.Background(), featuredCacheKey, &featured) {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "featuredProperties": featured})
	}

	houses, err := pc.repo.Find(context.Background(), repository.ListQuery{
		PropertyType: models.PropertyTypeHouse,
		Limit:        featuredPerType,
	})
	if err != nil {
		slog.Error("failed to fetch featured houses", "error", err)
		return fail(c, http.StatusNotFound, KindPersistence, "Failed to fetch featured properties")
	}
	lands, err := pc.repo.Find(context.Background(), repository.ListQuery{
		PropertyType: models.PropertyTypeLand,
		Limit:        featuredPerType,
	})
	if err != nil {
		slog.Error("failed to fetch featured land", "error", err)
		return fail(c, http.StatusNotFound, KindPersistence, "Failed to fetch featured properties")
	}

	featured = make([]models.Property, 0, len(houses)+len(lands))
	featured = append(featured, houses...)
	featured = append(featured, lands...)

	pc.cache.Set(context.Background(), featuredCacheKey, featured, cacheTTL)

	return c.JSON(http.StatusOK, echo.Map{
		"success":            true,
		"featuredProperties": featured,
	})
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("propertyId"))
	if err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, "Invalid property ID")
	}

	property, err := pc.repo.FindByID(context.Background(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, KindNotFound, "Property not found")
		}
		slog.Error("failed to fetch property", "id", id.Hex(), "error", err)
		return fail(c, http.StatusNotFound, KindPersistence, "Failed to fetch property")
	}

	similar, err := pc.repo.Find(context.Background(), repository.ListQuery{
		PropertyType: property.PropertyType,
		ExcludeID:    property.ID,
		Limit:        similarCount,
	})
	if err != nil {
		slog.Error("failed to fetch similar properties", "id", id.Hex(), "error", err)
		return fail(c, http.StatusNotFound, KindPersistence, "Failed to fetch similar properties")
	}
	if similar == nil {
		similar = []models.Property{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":           true,
		"property":          property,
		"similarProperties": similar,
	})
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("propertyId"))
	if err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, "Invalid property ID")
	}

	existing, err := pc.repo.FindByID(context.Background(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, KindNotFound, "Property not found")
		}
		slog.Error("failed to fetch property", "id", id.Hex(), "error", err)
		return fail(c, http.StatusNotFound, KindPersistence, "Failed to fetch property")
	}

	update, err := bindUpdateRequest(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, err.Error())
	}

	// Only the asset kinds re-submitted in this request are re-uploaded;
	// everything else keeps its stored URL.
	files := collectAssetFiles(c)
	if !files.empty() {
		urls, err := uploadAssets(context.Background(), pc.uploader, files)
		if err != nil {
			slog.Error("asset upload failed", "id", id.Hex(), "error", err)
			return failWrite(c, err)
		}
		if files.Avatar != nil {
			update.Avatar = &urls.Avatar
		}
		if len(files.Images) > 0 {
			update.Images = urls.Images
		}
		if files.Video != nil {
			update.Video = &urls.Video
		}
	}

	existing.ApplyUpdate(update)

	updated, err := pc.repo.Replace(context.Background(), existing)
	if err != nil {
		slog.Error("failed to update property", "id", id.Hex(), "error", err)
		return failWrite(c, err)
	}

	pc.cache.Invalidate(context.Background(), recentCacheKey, featuredCacheKey)

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "Property updated successfully",
		"property": updated,
	})
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("propertyId"))
	if err != nil {
		return fail(c, http.StatusBadRequest, KindValidation, "Invalid property ID")
	}

	// Deleting an id that no longer exists still reports success.
	if err := pc.repo.Delete(context.Background(), id); err != nil {
		slog.Error("failed to delete property", "id", id.Hex(), "error", err)
		return failWrite(c, err)
	}

	pc.cache.Invalidate(context.Background(), recentCacheKey, featuredCacheKey)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Property Deleted",
	})
}
