package handlers

import (
	"errors"

	"github.com/finesse-lifestyle/storefront-api/internal/authctx"
	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PreorderHandler struct {
	preorderService *services.PreorderService
}

func NewPreorderHandler(preorderService *services.PreorderService) *PreorderHandler {
	return &PreorderHandler{preorderService: preorderService}
}

func (h *PreorderHandler) AddToCart(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.preorderService.AddToCart(userID, &req)
	if err != nil {
		return preorderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"cart":    item,
	})
}

func (h *PreorderHandler) ListCart(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	items, err := h.preorderService.ListCart(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load preorder cart",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"carts":   items,
	})
}

func (h *PreorderHandler) UpdateCart(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	cartID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid cart id",
		})
	}

	var req dto.UpdateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, err := h.preorderService.UpdateCart(userID, cartID, req.Quantity)
	if err != nil {
		return preorderError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"cart":    item,
	})
}

func (h *PreorderHandler) RemoveFromCart(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	cartID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid cart id",
		})
	}

	if err := h.preorderService.RemoveFromCart(userID, cartID); err != nil {
		return preorderError(c, err)
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Item removed from preorder cart",
	})
}

func (h *PreorderHandler) Place(c *fiber.Ctx) error {
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

	preorder, err := h.preorderService.Place(userID, &req)
	if err != nil {
		return preorderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.PreorderResponse{
		Success:  true,
		Message:  "Preorder placed",
		Preorder: preorder,
	})
}

func (h *PreorderHandler) List(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	preorders, pagination, err := h.preorderService.List(userID, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load preorders",
		})
	}

	return c.JSON(dto.PreorderListResponse{
		Success:    true,
		Preorders:  preorders,
		Pagination: pagination,
	})
}

func (h *PreorderHandler) Get(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	preorderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid preorder id",
		})
	}

	preorder, err := h.preorderService.Get(userID, preorderID)
	if err != nil {
		return preorderError(c, err)
	}

	return c.JSON(dto.PreorderResponse{Success: true, Preorder: preorder})
}

func (h *PreorderHandler) Cancel(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	preorderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid preorder id",
		})
	}

	if err := h.preorderService.Cancel(userID, preorderID); err != nil {
		return preorderError(c, err)
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Preorder cancelled",
	})
}

func (h *PreorderHandler) PayNow(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	preorderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid preorder id",
		})
	}

	var req dto.PayNowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.preorderService.PayNow(userID, preorderID, req.PaymentMethod); err != nil {
		return preorderError(c, err)
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Payment recorded",
	})
}

func (h *PreorderHandler) ClearPayment(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	preorderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid preorder id",
		})
	}

	if err := h.preorderService.ClearPayment(userID, preorderID); err != nil {
		return preorderError(c, err)
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Payment status cleared",
	})
}

func preorderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrVariantNotFound), errors.Is(err, services.ErrCartItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrProductUnavailable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrAlreadyPaid), errors.Is(err, services.ErrAlreadyCancelled),
		errors.Is(err, services.ErrOrderDelivered):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
