package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/home/model"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// =============================
// ✉️ Lead intake (form POST, redirect back)
// =============================
//
// The form lives on every page, so the browser is always sent back to
// where it came from. A blank name drops the submission without an
// error: same redirect, no row, so bots probing the form learn nothing.
func (ctrl *ContactController) SubmitContact(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))

	if name != "" {
		lead := model.ContactRequestModel{
			ContactRequestName:     name,
			ContactRequestPhone:    strings.TrimSpace(c.FormValue("phone")),
			ContactRequestEmail:    strings.TrimSpace(c.FormValue("email")),
			ContactRequestTelegram: strings.TrimSpace(c.FormValue("telegram")),
			ContactRequestMessage:  strings.TrimSpace(c.FormValue("message")),
			ContactRequestSource:   strings.TrimSpace(c.FormValue("source")),
		}
		if err := ctrl.DB.Create(&lead).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save request")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:    "flash_message",
		Value:   "Thank you! We will contact you shortly.",
		Expires: time.Now().Add(30 * time.Second),
		Path:    "/",
	})

	target := c.Get(fiber.HeaderReferer)
	if target == "" {
		target = "/"
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}
