package handlers

import (
	"errors"

	"github.com/finesse-lifestyle/storefront-api/internal/authctx"
	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// optionalUserID is uuid.Nil when the request carries no valid token, which
// catalog formatting treats as "wishlist flags off".
func optionalUserID(c *fiber.Ctx) uuid.UUID {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return uuid.Nil
	}
	return userID
}

func (h *ProductHandler) Details(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid product id",
		})
	}

	product, err := h.catalogService.Details(productID, optionalUserID(c))
	if err != nil {
		return catalogError(c, err)
	}

	return c.JSON(dto.ProductDetailResponse{Success: true, Product: product})
}

func (h *ProductHandler) Variants(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid product id",
		})
	}

	variants, err := h.catalogService.Variants(productID)
	if err != nil {
		return catalogError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"variants": variants,
	})
}

func (h *ProductHandler) Related(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid product id",
		})
	}

	limit := c.QueryInt("limit", 8)

	products, err := h.catalogService.Related(productID, limit)
	if err != nil {
		return catalogError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

func (h *ProductHandler) Reviews(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid product id",
		})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	reviews, rating, pagination, err := h.catalogService.Reviews(productID, page, limit)
	if err != nil {
		return catalogError(c, err)
	}

	return c.JSON(dto.ReviewListResponse{
		Success:    true,
		Reviews:    reviews,
		Rating:     rating,
		Pagination: pagination,
	})
}

func (h *ProductHandler) CreateReview(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	review, err := h.catalogService.CreateReview(userID, &req)
	if err != nil {
		return catalogError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"review":  review,
	})
}

func (h *ProductHandler) Stock(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid product id",
		})
	}

	stock, err := h.catalogService.Stock(productID)
	if err != nil {
		return catalogError(c, err)
	}

	return c.JSON(dto.StockResponse{Success: true, Stock: stock})
}

func (h *ProductHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		term = c.Query("term")
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	products, pagination, err := h.catalogService.Search(term, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Search failed",
		})
	}

	return c.JSON(dto.ProductListResponse{
		Success:    true,
		Products:   products,
		Pagination: pagination,
	})
}

func catalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidRating):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrReviewExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
