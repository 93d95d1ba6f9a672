package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/events/dto"
	"baliestate_backend/internals/features/events/model"
	helper "baliestate_backend/internals/helpers"
	ossHelper "baliestate_backend/internals/helpers/oss"
)

var validateEvent = validator.New()

type EventAdminController struct {
	DB *gorm.DB
}

func NewEventAdminController(db *gorm.DB) *EventAdminController {
	return &EventAdminController{DB: db}
}

// =============================
// ➕ Create event
// =============================
func (ctrl *EventAdminController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	event := model.EventModel{
		EventTitle:            body.EventTitle,
		EventImageExtURL:      body.EventImageExtURL,
		EventShortDescription: body.EventShortDescription,
		EventDescription:      body.EventDescription,
		EventDate:             body.EventDate,
		EventEndDate:          body.EventEndDate,
		EventVenue:            body.EventVenue,
		EventAddress:          body.EventAddress,
		EventLatitude:         body.EventLatitude,
		EventLongitude:        body.EventLongitude,
		EventRegistrationURL:  body.EventRegistrationURL,
		EventStatus:           model.EventStatusUpcoming,
		EventIsFeatured:       body.EventIsFeatured,
		EventIsActive:         true,
	}
	if body.EventStatus != "" {
		event.EventStatus = body.EventStatus
	}
	if body.EventIsActive != nil {
		event.EventIsActive = *body.EventIsActive
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			event.EventID = uuid.Nil
			event.EventSlug = ""
			if err := ctrl.DB.Create(&event).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create event")
			}
		} else {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create event")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToEventDTO(event))
}

// =============================
// 🔄 Update event (slug never regenerated)
// =============================
func (ctrl *EventAdminController) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Event not found")
	}

	if body.EventTitle != nil {
		event.EventTitle = *body.EventTitle
	}
	if body.EventImageExtURL != nil {
		event.EventImageExtURL = *body.EventImageExtURL
	}
	if body.EventShortDescription != nil {
		event.EventShortDescription = *body.EventShortDescription
	}
	if body.EventDescription != nil {
		event.EventDescription = *body.EventDescription
	}
	if body.EventDate != nil {
		event.EventDate = *body.EventDate
	}
	if body.EventEndDate != nil {
		event.EventEndDate = body.EventEndDate
	}
	if body.EventVenue != nil {
		event.EventVenue = *body.EventVenue
	}
	if body.EventAddress != nil {
		event.EventAddress = *body.EventAddress
	}
	if body.EventLatitude != nil {
		event.EventLatitude = body.EventLatitude
	}
	if body.EventLongitude != nil {
		event.EventLongitude = body.EventLongitude
	}
	if body.EventRegistrationURL != nil {
		event.EventRegistrationURL = *body.EventRegistrationURL
	}
	if body.EventStatus != nil {
		event.EventStatus = *body.EventStatus
	}
	if body.EventIsFeatured != nil {
		event.EventIsFeatured = *body.EventIsFeatured
	}
	if body.EventIsActive != nil {
		event.EventIsActive = *body.EventIsActive
	}

	if err := ctrl.DB.Save(&event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update event")
	}

	return c.JSON(dto.ToEventDTO(event))
}

// =============================
// 🗑️ Delete event
// =============================
func (ctrl *EventAdminController) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.EventModel{}, "event_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete event")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Admin list (includes inactive)
// =============================
func (ctrl *EventAdminController) GetAllEvents(c *fiber.Ctx) error {
	var events []model.EventModel
	if err := ctrl.DB.
		Order("event_date DESC, event_id").
		Find(&events).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	items := make([]dto.EventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, dto.ToEventDTO(e))
	}

	return c.JSON(items)
}

// =============================
// 🖼️ Event image upload
// =============================
func (ctrl *EventAdminController) UploadEventImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Event not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing image file")
	}

	url, err := ossHelper.UploadImage("events", fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Image upload failed")
	}

	event.EventImageURL = url
	if err := ctrl.DB.Save(&event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save event image")
	}

	return helper.Success(c, "Image updated", fiber.Map{"url": url})
}
