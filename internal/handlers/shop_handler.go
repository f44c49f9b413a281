package handlers

import (
	"strconv"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ShopHandler struct {
	shopService *services.ShopService
}

func NewShopHandler(shopService *services.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

func (h *ShopHandler) Products(c *fiber.Ctx) error {
	filter := services.ShopFilter{
		Tag:  c.Query("tag"),
		Sort: c.Query("sort"),
	}

	if id, err := uuid.Parse(c.Query("group_id")); err == nil {
		filter.GroupID = &id
	}
	if id, err := uuid.Parse(c.Query("category_id")); err == nil {
		filter.CategoryID = &id
	}
	if id, err := uuid.Parse(c.Query("brand_id")); err == nil {
		filter.BrandID = &id
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filter.MaxPrice = &v
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	products, pagination, err := h.shopService.Products(filter, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load products",
		})
	}

	return c.JSON(dto.ProductListResponse{
		Success:    true,
		Products:   products,
		Pagination: pagination,
	})
}

func (h *ShopHandler) Featured(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 12)

	products, err := h.shopService.Featured(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load featured products",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

func (h *ShopHandler) Latest(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 12)

	products, err := h.shopService.Latest(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load latest products",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

func (h *ShopHandler) Groups(c *fiber.Ctx) error {
	groups, err := h.shopService.Groups()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load groups",
		})
	}

	return c.JSON(dto.GroupListResponse{Success: true, Groups: groups})
}

func (h *ShopHandler) MenuGroups(c *fiber.Ctx) error {
	groups, err := h.shopService.MenuGroups(c.Params("menuName"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load menu groups",
		})
	}

	return c.JSON(dto.GroupListResponse{Success: true, Groups: groups})
}

func (h *ShopHandler) Brands(c *fiber.Ctx) error {
	brands, err := h.shopService.Brands()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load brands",
		})
	}

	return c.JSON(dto.BrandListResponse{Success: true, Brands: brands})
}

func (h *ShopHandler) Tags(c *fiber.Ctx) error {
	tags, err := h.shopService.Tags()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load tags",
		})
	}

	return c.JSON(dto.TagListResponse{Success: true, Tags: tags})
}
