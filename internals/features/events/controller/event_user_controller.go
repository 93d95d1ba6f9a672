package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/events/dto"
	"baliestate_backend/internals/features/events/model"
	helper "baliestate_backend/internals/helpers"
)

const eventPageSize = 9

type EventUserController struct {
	DB *gorm.DB
}

func NewEventUserController(db *gorm.DB) *EventUserController {
	return &EventUserController{DB: db}
}

// =============================
// 📅 Events list (upcoming/past tabs)
// =============================
func (ctrl *EventUserController) ListEvents(c *fiber.Ctx) error {
	tab := c.Query("tab", "upcoming")
	if tab != "past" {
		tab = "upcoming"
	}
	now := time.Now()

	tx := ctrl.DB.Model(&model.EventModel{}).Scopes(model.ScopeActiveEvents)
	order := "event_date ASC, event_id"
	if tab == "past" {
		tx = tx.Where("event_date < ?", now)
		order = "event_date DESC, event_id"
	} else {
		tx = tx.Where("event_date >= ?", now)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count events")
	}

	params := helper.ParsePage(c, eventPageSize)
	params.ClampToTotal(total)

	var events []model.EventModel
	if err := tx.
		Order(order).
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&events).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	items := make([]dto.EventLiteDTO, 0, len(events))
	for _, e := range events {
		items = append(items, dto.ToEventLiteDTO(e))
	}

	return helper.Success(c, "OK", fiber.Map{
		"events":      items,
		"pagination":  helper.BuildMeta(total, params),
		"current_tab": tab,
	})
}

// =============================
// 🔍 Event detail by slug
// =============================
func (ctrl *EventUserController) GetEventBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var event model.EventModel
	err := ctrl.DB.
		Scopes(model.ScopeActiveEvents).
		First(&event, "event_slug = ?", slug).Error
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Event not found")
	}

	// other upcoming events for the "you may also like" strip
	var related []model.EventModel
	if err := ctrl.DB.
		Scopes(model.ScopeActiveEvents).
		Where("event_id <> ? AND event_date >= ?", event.EventID, time.Now()).
		Order("event_date ASC, event_id").
		Limit(3).
		Find(&related).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve related events")
	}
	relatedDTOs := make([]dto.EventLiteDTO, 0, len(related))
	for _, e := range related {
		relatedDTOs = append(relatedDTOs, dto.ToEventLiteDTO(e))
	}

	return helper.Success(c, "OK", fiber.Map{
		"event":          dto.ToEventDTO(event),
		"related_events": relatedDTOs,
	})
}
