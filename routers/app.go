package routers

import (
	"revtrack/config"
	accountRoutes "revtrack/routers/accountRoutes"
	authRoutes "revtrack/routers/authRoutes"
	companyRoutes "revtrack/routers/companyRoutes"
	reviewRoutes "revtrack/routers/reviewRoutes"
	reviewerRoutes "revtrack/routers/reviewerRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// fiberConfig honours forwarding headers only when explicit trusted
// proxies are configured. Without the trusted-proxy check fiber trusts
// every peer, so setting ProxyHeader unconditionally would let any client
// spoof the review origin address through X-Forwarded-For; with no
// trusted proxies c.IP() must stay the transport peer address.
func fiberConfig() fiber.Config {
	cfg := fiber.Config{}
	if proxies := config.AppConfig.TrustedProxies; len(proxies) > 0 {
		cfg.EnableTrustedProxyCheck = true
		cfg.TrustedProxies = proxies
		cfg.ProxyHeader = fiber.HeaderXForwardedFor
	}
	return cfg
}

// NewApp builds the fiber application with proxy, CORS and request
// logging configuration and every route registered.
func NewApp() *fiber.App {
	app := fiber.New(fiberConfig())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	accountRoutes.SetupAccountRoutes(app)
	companyRoutes.SetupCompanyRoutes(app)
	reviewerRoutes.SetupReviewerRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)

	return app
}
