package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/properties/dto"
	"baliestate_backend/internals/features/properties/model"
)

// CRUD over locations and property types. Deleting either never
// touches the properties that reference it; the FK is nulled by the
// schema (ON DELETE SET NULL).

var validateClassifier = validator.New()

type ClassifierAdminController struct {
	DB *gorm.DB
}

func NewClassifierAdminController(db *gorm.DB) *ClassifierAdminController {
	return &ClassifierAdminController{DB: db}
}

type upsertClassifierRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
}

// =============================
// 📍 Locations
// =============================

func (ctrl *ClassifierAdminController) CreateLocation(c *fiber.Ctx) error {
	var body upsertClassifierRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClassifier.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	location := model.LocationModel{
		LocationName:        body.Name,
		LocationDescription: body.Description,
	}
	if err := ctrl.DB.Create(&location).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create location")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToLocationDTO(location))
}

func (ctrl *ClassifierAdminController) UpdateLocation(c *fiber.Ctx) error {
	id := c.Params("id")

	var body upsertClassifierRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClassifier.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var location model.LocationModel
	if err := ctrl.DB.First(&location, "location_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Location not found")
	}

	location.LocationName = body.Name
	location.LocationDescription = body.Description

	if err := ctrl.DB.Save(&location).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update location")
	}

	return c.JSON(dto.ToLocationDTO(location))
}

func (ctrl *ClassifierAdminController) DeleteLocation(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.LocationModel{}, "location_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete location")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 🏷️ Property types
// =============================

func (ctrl *ClassifierAdminController) CreatePropertyType(c *fiber.Ctx) error {
	var body upsertClassifierRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClassifier.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	propertyType := model.PropertyTypeModel{PropertyTypeName: body.Name}
	if err := ctrl.DB.Create(&propertyType).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create property type")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToPropertyTypeDTO(propertyType))
}

func (ctrl *ClassifierAdminController) UpdatePropertyType(c *fiber.Ctx) error {
	id := c.Params("id")

	var body upsertClassifierRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClassifier.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var propertyType model.PropertyTypeModel
	if err := ctrl.DB.First(&propertyType, "property_type_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Property type not found")
	}

	propertyType.PropertyTypeName = body.Name

	if err := ctrl.DB.Save(&propertyType).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update property type")
	}

	return c.JSON(dto.ToPropertyTypeDTO(propertyType))
}

func (ctrl *ClassifierAdminController) DeletePropertyType(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.PropertyTypeModel{}, "property_type_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete property type")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
