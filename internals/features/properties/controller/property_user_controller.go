package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/properties/dto"
	"baliestate_backend/internals/features/properties/model"
	helper "baliestate_backend/internals/helpers"
)

// Public catalogue endpoints. Only property_is_active=true rows are
// ever visible here; the admin controller sees everything.

const propertyPageSize = 9

type PropertyUserController struct {
	DB *gorm.DB
}

func NewPropertyUserController(db *gorm.DB) *PropertyUserController {
	return &PropertyUserController{DB: db}
}

// =============================
// 📄 List properties (filters + paging)
// =============================
//
// Filters:
//   - q        → case-insensitive substring on name
//   - location → location slug equality
//   - type     → property type slug equality
//   - rooms    → "3" means three or more, any other number is exact,
//     non-numeric values are ignored (kept from the original site)
func (ctrl *PropertyUserController) ListProperties(c *fiber.Ctx) error {
	filters := dto.PropertyFilters{
		Q:        strings.TrimSpace(c.Query("q")),
		Location: strings.TrimSpace(c.Query("location")),
		Type:     strings.TrimSpace(c.Query("type")),
		Rooms:    strings.TrimSpace(c.Query("rooms")),
	}

	tx := ctrl.DB.Model(&model.PropertyModel{}).Scopes(model.ScopeActiveProperties)

	if filters.Q != "" {
		tx = tx.Where("lower(property_name) LIKE lower(?)", "%"+filters.Q+"%")
	}
	if filters.Location != "" {
		tx = tx.Joins("JOIN locations ON locations.location_id = properties.property_location_id").
			Where("locations.location_slug = ?", filters.Location)
	}
	if filters.Type != "" {
		tx = tx.Joins("JOIN property_types ON property_types.property_type_id = properties.property_type_id").
			Where("property_types.property_type_slug = ?", filters.Type)
	}
	if filters.Rooms != "" {
		if n, err := strconv.Atoi(filters.Rooms); err == nil {
			if filters.Rooms == "3" {
				tx = tx.Where("property_rooms >= ?", n)
			} else {
				tx = tx.Where("property_rooms = ?", n)
			}
		}
		// non-numeric rooms filter is treated as absent
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count properties")
	}

	params := helper.ParsePage(c, propertyPageSize)
	params.ClampToTotal(total)

	var properties []model.PropertyModel
	if err := tx.
		Preload("PropertyType").
		Preload("PropertyLocation").
		Order("property_is_featured DESC, property_created_at DESC, property_id").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&properties).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve properties")
	}

	items := make([]dto.PropertyLiteDTO, 0, len(properties))
	for _, p := range properties {
		items = append(items, dto.ToPropertyLiteDTO(p))
	}

	// filter option lists for the sidebar
	var locations []model.LocationModel
	if err := ctrl.DB.Order("location_name").Find(&locations).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve locations")
	}
	var types []model.PropertyTypeModel
	if err := ctrl.DB.Order("property_type_name").Find(&types).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve property types")
	}

	locationDTOs := make([]dto.LocationDTO, 0, len(locations))
	for _, l := range locations {
		locationDTOs = append(locationDTOs, dto.ToLocationDTO(l))
	}
	typeDTOs := make([]dto.PropertyTypeDTO, 0, len(types))
	for _, t := range types {
		typeDTOs = append(typeDTOs, dto.ToPropertyTypeDTO(t))
	}

	return helper.Success(c, "OK", fiber.Map{
		"properties":     items,
		"pagination":     helper.BuildMeta(total, params),
		"filters":        filters,
		"locations":      locationDTOs,
		"property_types": typeDTOs,
	})
}

// =============================
// 🔍 Property detail by slug
// =============================
func (ctrl *PropertyUserController) GetPropertyBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var property model.PropertyModel
	err := ctrl.DB.
		Scopes(model.ScopeActiveProperties).
		Preload("PropertyType").
		Preload("PropertyLocation").
		Preload("PropertyImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_image_order")
		}).
		First(&property, "property_slug = ?", slug).Error
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Property not found")
	}

	// similar listings: same location, newest first
	var similar []model.PropertyModel
	if property.PropertyLocationID != nil {
		if err := ctrl.DB.
			Scopes(model.ScopeActiveProperties).
			Preload("PropertyType").
			Preload("PropertyLocation").
			Where("property_location_id = ?", *property.PropertyLocationID).
			Where("property_id <> ?", property.PropertyID).
			Order("property_is_featured DESC, property_created_at DESC, property_id").
			Limit(4).
			Find(&similar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve similar properties")
		}
	}

	similarDTOs := make([]dto.PropertyLiteDTO, 0, len(similar))
	for _, p := range similar {
		similarDTOs = append(similarDTOs, dto.ToPropertyLiteDTO(p))
	}

	return helper.Success(c, "OK", fiber.Map{
		"property":           dto.ToPropertyDTO(property),
		"similar_properties": similarDTOs,
	})
}
