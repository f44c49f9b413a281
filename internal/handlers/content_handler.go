package handlers

import (
	"errors"

	"github.com/finesse-lifestyle/storefront-api/internal/authctx"
	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/finesse-lifestyle/storefront-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) Settings(c *fiber.Ctx) error {
	settings, err := h.contentService.Settings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load settings",
		})
	}

	return c.JSON(dto.SettingsResponse{Success: true, Settings: settings})
}

func (h *ContentHandler) Page(c *fiber.Ctx) error {
	page, err := h.contentService.Page(c.Params("routeName"))
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load page",
		})
	}

	return c.JSON(dto.PageResponse{Success: true, Page: page})
}

func (h *ContentHandler) Faqs(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	faqs, pagination, err := h.contentService.Faqs(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load faqs",
		})
	}

	return c.JSON(dto.FaqListResponse{
		Success:    true,
		Faqs:       faqs,
		Pagination: pagination,
	})
}

func (h *ContentHandler) FrontSliders(c *fiber.Ctx) error {
	return h.sliders(c, models.SliderKindFront)
}

func (h *ContentHandler) PromotionalSliders(c *fiber.Ctx) error {
	return h.sliders(c, models.SliderKindPromotional)
}

func (h *ContentHandler) sliders(c *fiber.Ctx, kind string) error {
	sliders, err := h.contentService.Sliders(kind)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load sliders",
		})
	}

	return c.JSON(dto.SliderListResponse{Success: true, Sliders: sliders})
}

func (h *ContentHandler) MenuSliders(c *fiber.Ctx) error {
	sliders, err := h.contentService.MenuSliders(c.Params("menuName"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load sliders",
		})
	}

	return c.JSON(dto.SliderListResponse{Success: true, Sliders: sliders})
}

func (h *ContentHandler) Menus(c *fiber.Ctx) error {
	menus, err := h.contentService.Menus()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load menus",
		})
	}

	return c.JSON(dto.MenuListResponse{Success: true, Menus: menus})
}

func (h *ContentHandler) ContactUs(c *fiber.Ctx) error {
	var req dto.ContactUsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Message is required",
		})
	}

	if err := h.contentService.StoreContactMessage(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store message",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Success: true,
		Message: "Thanks for reaching out, we will get back to you soon",
	})
}

func (h *ContentHandler) CreateReport(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.contentService.StoreReport(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"report":  report,
	})
}

func (h *ContentHandler) Reports(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	reports, pagination, err := h.contentService.Reports(userID, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load reports",
		})
	}

	return c.JSON(dto.ReportListResponse{
		Success:    true,
		Reports:    reports,
		Pagination: pagination,
	})
}
