package routes

import (
	"time"

	"github.com/finesse-lifestyle/storefront-api/internal/config"
	"github.com/finesse-lifestyle/storefront-api/internal/handlers"
	"github.com/finesse-lifestyle/storefront-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Cart         *handlers.CartHandler
	Order        *handlers.OrderHandler
	Preorder     *handlers.PreorderHandler
	Product      *handlers.ProductHandler
	Shop         *handlers.ShopHandler
	Wishlist     *handlers.WishlistHandler
	Notification *handlers.NotificationHandler
	Content      *handlers.ContentHandler
	Admin        *handlers.AdminHandler
	Health       *handlers.HealthHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth is public, with a stricter 10 req/min limit to slow OTP abuse
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/send-activation-code", h.Auth.SendCode)
	auth.Post("/activate-account", h.Auth.ActivateAccount)
	auth.Post("/send-password-reset-code", h.Auth.SendResetCode)
	auth.Post("/reset-password", h.Auth.ResetPassword)
	auth.Post("/logout", h.Auth.Logout)

	// Catalog (public)
	products := api.Group("/products")
	products.Get("/search", h.Product.Search)
	products.Get("/details/:id", h.Product.Details)
	products.Get("/variable/:id", h.Product.Variants)
	products.Get("/related/:id", h.Product.Related)
	products.Get("/reviews/:id", h.Product.Reviews)
	products.Get("/stock/:id", h.Product.Stock)
	products.Post("/reviews", middleware.JWTProtected(cfg), middleware.ActiveUser(db), h.Product.CreateReview)

	shop := api.Group("/shop")
	shop.Get("/", h.Shop.Products)
	shop.Get("/featured", h.Shop.Featured)
	shop.Get("/latest", h.Shop.Latest)
	shop.Get("/groups", h.Shop.Groups)
	shop.Get("/brands", h.Shop.Brands)
	shop.Get("/tags", h.Shop.Tags)

	// Content (public)
	home := api.Group("/home")
	home.Get("/settings", h.Content.Settings)
	home.Get("/page/:routeName", h.Content.Page)
	home.Get("/faqs", h.Content.Faqs)
	home.Get("/sliders", h.Content.FrontSliders)
	home.Get("/promotional-sliders", h.Content.PromotionalSliders)
	home.Post("/contact-us", h.Content.ContactUs)

	api.Get("/menu", h.Content.Menus)
	api.Get("/menu/:menuName/sliders", h.Content.MenuSliders)
	api.Get("/menu/:menuName/groups", h.Shop.MenuGroups)

	// Customer routes require a JWT plus an activated account
	protected := []fiber.Handler{middleware.JWTProtected(cfg), middleware.ActiveUser(db)}

	cart := api.Group("/cart", protected...)
	cart.Post("/", h.Cart.Add)
	cart.Get("/", h.Cart.List)
	cart.Get("/count", h.Cart.Count)
	cart.Get("/total", h.Cart.Total)
	cart.Delete("/clear", h.Cart.Clear)
	cart.Put("/:id", h.Cart.Update)
	cart.Delete("/:id", h.Cart.Remove)

	orders := api.Group("/orders", protected...)
	orders.Post("/check-stock", h.Order.CheckStock)
	orders.Post("/check-coupon", h.Order.CheckCoupon)
	orders.Post("/check-gift-voucher", h.Order.CheckGiftVoucher)
	orders.Post("/", h.Order.Place)
	orders.Get("/", h.Order.List)
	orders.Put("/cancel/:id", h.Order.Cancel)
	orders.Put("/pay/:id", h.Order.PayNow)
	orders.Put("/clear-payment/:id", h.Order.ClearPayment)
	orders.Get("/:id", h.Order.Get)

	preorder := api.Group("/preorder", protected...)
	preorder.Post("/cart", h.Preorder.AddToCart)
	preorder.Get("/cart", h.Preorder.ListCart)
	preorder.Put("/cart/:id", h.Preorder.UpdateCart)
	preorder.Delete("/cart/:id", h.Preorder.RemoveFromCart)
	preorder.Post("/orders", h.Preorder.Place)
	preorder.Get("/orders", h.Preorder.List)
	preorder.Put("/orders/cancel/:id", h.Preorder.Cancel)
	preorder.Put("/orders/pay/:id", h.Preorder.PayNow)
	preorder.Put("/orders/clear-payment/:id", h.Preorder.ClearPayment)
	preorder.Get("/orders/:id", h.Preorder.Get)

	wishlist := api.Group("/wishlist", protected...)
	wishlist.Get("/", h.Wishlist.List)
	wishlist.Post("/", h.Wishlist.Add)
	wishlist.Get("/count", h.Wishlist.Count)
	wishlist.Get("/check/:productId", h.Wishlist.Check)
	wishlist.Delete("/:id", h.Wishlist.Remove)

	notifications := api.Group("/notifications", protected...)
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unseen-count", h.Notification.UnseenCount)
	notifications.Put("/seen-all", h.Notification.MarkAllSeen)
	notifications.Put("/seen/:id", h.Notification.MarkSeen)
	notifications.Delete("/:id", h.Notification.Delete)

	api.Post("/reports", append(protected, h.Content.CreateReport)...)
	api.Get("/reports", append(protected, h.Content.Reports)...)

	// Admin panel (JWT + admin check)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/export/orders", h.Admin.ExportOrders)
	admin.Get("/export/products", h.Admin.ExportProducts)
	admin.Post("/coupons", h.Admin.CreateCoupon)
	admin.Get("/coupons", h.Admin.ListCoupons)
	admin.Put("/coupons/:code/deactivate", h.Admin.DeactivateCoupon)
	admin.Post("/gift-vouchers", h.Admin.CreateGiftVoucher)
	admin.Get("/gift-vouchers", h.Admin.ListGiftVouchers)
	admin.Put("/orders/:id/deliver", h.Admin.MarkDelivered)
}
