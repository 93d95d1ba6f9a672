package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/properties/dto"
	"baliestate_backend/internals/features/properties/model"
	helper "baliestate_backend/internals/helpers"
	ossHelper "baliestate_backend/internals/helpers/oss"
)

var validateProperty = validator.New()

type PropertyAdminController struct {
	DB *gorm.DB
}

func NewPropertyAdminController(db *gorm.DB) *PropertyAdminController {
	return &PropertyAdminController{DB: db}
}

// =============================
// ➕ Create property
// =============================
func (ctrl *PropertyAdminController) CreateProperty(c *fiber.Ctx) error {
	var body dto.CreatePropertyRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProperty.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	developerID, err := uuid.Parse(body.PropertyDeveloperID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid developer id")
	}

	property := model.PropertyModel{
		PropertyName:               body.PropertyName,
		PropertyDeveloperID:        developerID,
		PropertyMainImageExtURL:    body.PropertyMainImageExtURL,
		PropertyPriceFrom:          body.PropertyPriceFrom,
		PropertyArea:               body.PropertyArea,
		PropertyRooms:              body.PropertyRooms,
		PropertyROI:                body.PropertyROI,
		PropertyStatus:             model.PropertyStatusSale,
		PropertyConstructionStatus: model.ConstructionInProgress,
		PropertyCompletionDate:     body.PropertyCompletionDate,
		PropertyShortDescription:   body.PropertyShortDescription,
		PropertyDescription:        body.PropertyDescription,
		PropertyHasGarage:          body.PropertyHasGarage,
		PropertyOceanDistance:      body.PropertyOceanDistance,
		PropertyAddress:            body.PropertyAddress,
		PropertyLatitude:           body.PropertyLatitude,
		PropertyLongitude:          body.PropertyLongitude,
		PropertyDistances:          body.PropertyDistances,
		PropertyIsFeatured:         body.PropertyIsFeatured,
		PropertyIsActive:           true,
	}
	if body.PropertyStatus != "" {
		property.PropertyStatus = body.PropertyStatus
	}
	if body.PropertyConstructionStatus != "" {
		property.PropertyConstructionStatus = body.PropertyConstructionStatus
	}
	if body.PropertyIsActive != nil {
		property.PropertyIsActive = *body.PropertyIsActive
	}
	if body.PropertyTypeID != nil {
		id, err := uuid.Parse(*body.PropertyTypeID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid property type id")
		}
		property.PropertyTypeID = &id
	}
	if body.PropertyLocationID != nil {
		id, err := uuid.Parse(*body.PropertyLocationID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid location id")
		}
		property.PropertyLocationID = &id
	}

	// Slug is derived in BeforeCreate. A concurrent create can still
	// lose the unique-index race; the loser re-probes and retries.
	if err := ctrl.DB.Create(&property).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			property.PropertyID = uuid.Nil
			property.PropertySlug = ""
			if err := ctrl.DB.Create(&property).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create property")
			}
		} else {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create property")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToPropertyDTO(property))
}

// =============================
// 🔄 Update property
// =============================
func (ctrl *PropertyAdminController) UpdateProperty(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdatePropertyRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProperty.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var property model.PropertyModel
	if err := ctrl.DB.First(&property, "property_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Property not found")
	}

	// slug stays whatever it was at creation time, even on rename
	if body.PropertyName != nil {
		property.PropertyName = *body.PropertyName
	}
	if body.PropertyDeveloperID != nil {
		devID, err := uuid.Parse(*body.PropertyDeveloperID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid developer id")
		}
		property.PropertyDeveloperID = devID
	}
	if body.PropertyTypeID != nil {
		typeID, err := uuid.Parse(*body.PropertyTypeID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid property type id")
		}
		property.PropertyTypeID = &typeID
	}
	if body.PropertyLocationID != nil {
		locID, err := uuid.Parse(*body.PropertyLocationID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid location id")
		}
		property.PropertyLocationID = &locID
	}
	if body.PropertyMainImageExtURL != nil {
		property.PropertyMainImageExtURL = *body.PropertyMainImageExtURL
	}
	if body.PropertyPriceFrom != nil {
		property.PropertyPriceFrom = body.PropertyPriceFrom
	}
	if body.PropertyArea != nil {
		property.PropertyArea = body.PropertyArea
	}
	if body.PropertyRooms != nil {
		property.PropertyRooms = body.PropertyRooms
	}
	if body.PropertyROI != nil {
		property.PropertyROI = body.PropertyROI
	}
	if body.PropertyStatus != nil {
		property.PropertyStatus = *body.PropertyStatus
	}
	if body.PropertyConstructionStatus != nil {
		property.PropertyConstructionStatus = *body.PropertyConstructionStatus
	}
	if body.PropertyCompletionDate != nil {
		property.PropertyCompletionDate = *body.PropertyCompletionDate
	}
	if body.PropertyShortDescription != nil {
		property.PropertyShortDescription = *body.PropertyShortDescription
	}
	if body.PropertyDescription != nil {
		property.PropertyDescription = *body.PropertyDescription
	}
	if body.PropertyHasGarage != nil {
		property.PropertyHasGarage = *body.PropertyHasGarage
	}
	if body.PropertyOceanDistance != nil {
		property.PropertyOceanDistance = *body.PropertyOceanDistance
	}
	if body.PropertyAddress != nil {
		property.PropertyAddress = *body.PropertyAddress
	}
	if body.PropertyLatitude != nil {
		property.PropertyLatitude = body.PropertyLatitude
	}
	if body.PropertyLongitude != nil {
		property.PropertyLongitude = body.PropertyLongitude
	}
	if body.PropertyDistances != nil {
		property.PropertyDistances = body.PropertyDistances
	}
	if body.PropertyIsFeatured != nil {
		property.PropertyIsFeatured = *body.PropertyIsFeatured
	}
	if body.PropertyIsActive != nil {
		property.PropertyIsActive = *body.PropertyIsActive
	}

	if err := ctrl.DB.Save(&property).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update property")
	}

	return c.JSON(dto.ToPropertyDTO(property))
}

// =============================
// 🗑️ Delete property
// =============================
func (ctrl *PropertyAdminController) DeleteProperty(c *fiber.Ctx) error {
	id := c.Params("id")

	// gallery rows go with it (ON DELETE CASCADE)
	if err := ctrl.DB.Delete(&model.PropertyModel{}, "property_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete property")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Admin list (includes inactive)
// =============================
func (ctrl *PropertyAdminController) GetAllProperties(c *fiber.Ctx) error {
	var total int64
	if err := ctrl.DB.Model(&model.PropertyModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count properties")
	}

	params := helper.ParsePage(c, 50)
	params.ClampToTotal(total)

	var properties []model.PropertyModel
	if err := ctrl.DB.
		Preload("PropertyType").
		Preload("PropertyLocation").
		Order("property_created_at DESC, property_id").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&properties).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve properties")
	}

	items := make([]dto.PropertyDTO, 0, len(properties))
	for _, p := range properties {
		items = append(items, dto.ToPropertyDTO(p))
	}

	return helper.Success(c, "OK", fiber.Map{
		"properties": items,
		"pagination": helper.BuildMeta(total, params),
	})
}

// =============================
// 🔍 Admin detail by id
// =============================
func (ctrl *PropertyAdminController) GetPropertyByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var property model.PropertyModel
	if err := ctrl.DB.
		Preload("PropertyType").
		Preload("PropertyLocation").
		Preload("PropertyImages").
		First(&property, "property_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Property not found")
	}

	return c.JSON(dto.ToPropertyDTO(property))
}

// =============================
// 🖼️ Upload main image / gallery image
// =============================
func (ctrl *PropertyAdminController) UploadPropertyImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var property model.PropertyModel
	if err := ctrl.DB.First(&property, "property_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Property not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing image file")
	}

	url, err := ossHelper.UploadImage("properties", fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Image upload failed")
	}

	// target=main replaces the card image, anything else appends to the gallery
	if c.FormValue("target") == "main" {
		property.PropertyMainImageURL = url
		if err := ctrl.DB.Save(&property).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save property image")
		}
		return helper.Success(c, "Main image updated", fiber.Map{"url": url})
	}

	img := model.PropertyImageModel{
		PropertyImagePropertyID: property.PropertyID,
		PropertyImageURL:        url,
		PropertyImageOrder:      c.QueryInt("order", 0),
	}
	if err := ctrl.DB.Create(&img).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save gallery image")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gallery image added", dto.ToPropertyImageDTO(img))
}

// =============================
// 🗑️ Delete gallery image
// =============================
func (ctrl *PropertyAdminController) DeletePropertyImage(c *fiber.Ctx) error {
	imageID := c.Params("imageId")

	var img model.PropertyImageModel
	if err := ctrl.DB.First(&img, "property_image_id = ?", imageID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}

	if img.PropertyImageURL != "" {
		_ = ossHelper.DeleteObject(img.PropertyImageURL) // storage cleanup is best-effort
	}

	if err := ctrl.DB.Delete(&img).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete image")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
