package handlers

import (
	"errors"

	"github.com/finesse-lifestyle/storefront-api/internal/authctx"
	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	order, err := h.orderService.Place(userID, &req)
	if err != nil {
		return orderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OrderResponse{
		Success: true,
		Message: "Order placed",
		Order:   order,
	})
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	orders, pagination, err := h.orderService.List(userID, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load orders",
		})
	}

	return c.JSON(dto.OrderListResponse{
		Success:    true,
		Orders:     orders,
		Pagination: pagination,
	})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid order id",
		})
	}

	order, err := h.orderService.Get(userID, orderID)
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(dto.OrderResponse{Success: true, Order: order})
}

func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid order id",
		})
	}

	if err := h.orderService.Cancel(userID, orderID); err != nil {
		return orderError(c, err)
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Order cancelled",
	})
}

func (h *OrderHandler) PayNow(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid order id",
		})
	}

	var req dto.PayNowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.orderService.PayNow(userID, orderID, req.PaymentMethod); err != nil {
		return orderError(c, err)
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Payment recorded",
	})
}

func (h *OrderHandler) ClearPayment(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid order id",
		})
	}

	if err := h.orderService.ClearPayment(userID, orderID); err != nil {
		return orderError(c, err)
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Payment status cleared",
	})
}

func (h *OrderHandler) CheckStock(c *fiber.Ctx) error {
	var req dto.CheckStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	variantID := uuid.Nil
	if req.VariantID != nil {
		variantID = *req.VariantID
	}

	resp, err := h.orderService.CheckStock(req.ProductID, variantID, req.Quantity)
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(resp)
}

func (h *OrderHandler) CheckCoupon(c *fiber.Ctx) error {
	var req dto.CheckCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	coupon, discount, err := h.orderService.CheckCoupon(req.Code, req.OrderAmount)
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(dto.CheckCouponResponse{
		Success:  true,
		Coupon:   coupon,
		Discount: discount,
	})
}

func (h *OrderHandler) CheckGiftVoucher(c *fiber.Ctx) error {
	var req dto.CheckGiftVoucherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	voucher, err := h.orderService.CheckGiftVoucher(req.Code)
	if err != nil {
		return orderError(c, err)
	}

	return c.JSON(dto.CheckGiftVoucherResponse{
		Success: true,
		Amount:  voucher.Amount,
	})
}

func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrInvalidCoupon),
		errors.Is(err, services.ErrMinOrderNotMet), errors.Is(err, services.ErrInvalidVoucher),
		errors.Is(err, services.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrCouponLimitExceeded), errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrAlreadyCancelled), errors.Is(err, services.ErrOrderDelivered):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
