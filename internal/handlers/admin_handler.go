package handlers

import (
	"bytes"
	"errors"
	"io"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService *services.AdminService
	orderService *services.OrderService
}

func NewAdminHandler(adminService *services.AdminService, orderService *services.OrderService) *AdminHandler {
	return &AdminHandler{adminService: adminService, orderService: orderService}
}

func (h *AdminHandler) ExportOrders(c *fiber.Ctx) error {
	return h.export(c, "orders.xlsx", h.adminService.ExportOrders)
}

func (h *AdminHandler) ExportProducts(c *fiber.Ctx) error {
	return h.export(c, "products.xlsx", h.adminService.ExportProducts)
}

func (h *AdminHandler) export(c *fiber.Ctx, filename string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Export failed",
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(buf.Bytes())
}

func (h *AdminHandler) CreateCoupon(c *fiber.Ctx) error {
	var req dto.CreateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	coupon, err := h.adminService.CreateCoupon(req.Code, req.Type, req.Value, req.MaxDiscount, req.MinOrderAmount, req.UsageLimit)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCouponCodeTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidCoupon):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"coupon":  coupon,
	})
}

func (h *AdminHandler) DeactivateCoupon(c *fiber.Ctx) error {
	if err := h.adminService.DeactivateCoupon(c.Params("code")); err != nil {
		if errors.Is(err, services.ErrCouponNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Coupon deactivated"})
}

func (h *AdminHandler) ListCoupons(c *fiber.Ctx) error {
	coupons, err := h.adminService.ListCoupons()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load coupons",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"coupons": coupons,
	})
}

func (h *AdminHandler) CreateGiftVoucher(c *fiber.Ctx) error {
	var req dto.CreateGiftVoucherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	voucher, err := h.adminService.CreateGiftVoucher(req.Code, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVoucherCodeTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidVoucher):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"voucher": voucher,
	})
}

func (h *AdminHandler) ListGiftVouchers(c *fiber.Ctx) error {
	vouchers, err := h.adminService.ListGiftVouchers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load gift vouchers",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"vouchers": vouchers,
	})
}

func (h *AdminHandler) MarkDelivered(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid order id",
		})
	}

	if err := h.orderService.MarkDelivered(orderID); err != nil {
		return orderError(c, err)
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Order marked as delivered"})
}
