package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	adminrouter "github.com/Bryanhudson603/extraplusdelivery/internal/api/admin/router"
	authrouter "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/router"
	basehdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/handler"
	catalogorouter "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/router"
	cupomrouter "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/router"
	entregadorrouter "github.com/Bryanhudson603/extraplusdelivery/internal/api/entregador/router"
	pedidorouter "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/router"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/router"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
	"github.com/Bryanhudson603/extraplusdelivery/internal/logger"
)

// registerSystemRoutes registra as rotas de operação (health check)
func registerSystemRoutes(api fiber.Router, r *router.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return err
	}
	system := api.Group("/system")
	system.Get("/health", systemHandler.HandleHealth)
	return nil
}

// InitFiberApp inicializa a aplicação Fiber com os middlewares necessários
func InitFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		// =========================================
		// 1. CONFIGURAÇÃO BÁSICA
		// =========================================
		AppName:       "Extra Plus Delivery API",
		ServerHeader:  "Extra Plus Delivery API",
		StrictRouting: false, // /pedidos e /pedidos/ são a mesma rota
		CaseSensitive: true,  // /Foo e /foo são rotas diferentes
		UnescapePath:  true,  // Decodifica paths URL-encoded automaticamente
		Immutable:     false,

		// =========================================
		// 2. CONFIGURAÇÃO DE PERFORMANCE
		// =========================================
		BodyLimit:       10 * 1024 * 1024, // Tamanho máximo do request body (10MB)
		Concurrency:     256 * 1024,       // Máximo de goroutines
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		// =========================================
		// 3. TIMEOUTS
		// =========================================
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		// =========================================
		// 4. ERROR HANDLING
		// =========================================
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusForbidden:
					errorCode = common.ErrCodeAuthScope.Code
				case fiber.StatusNotFound:
					errorCode = common.ErrCodeDatabaseQuery.Code
				case fiber.StatusConflict:
					errorCode = common.ErrCodeDatabaseQuery.Code
				}
			}

			// Handshake TLS contra o server HTTP (request https:// em porta
			// http) chega como request inválida começando com \x16\x03\x01
			errMsg := err.Error()
			isTLSHandshake := strings.Contains(errMsg, "unsupported http request method") &&
				(strings.Contains(errMsg, "\\x16\\x03\\x01") ||
					strings.Contains(errMsg, "\x16\x03\x01") ||
					strings.Contains(errMsg, "error when reading request headers"))

			if isTLSHandshake {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"code":    common.ErrCodeValidationInput.Code,
					"message": "O servidor só atende HTTP. Use http:// em vez de https://",
					"status":  "error",
					"details": fiber.Map{
						"protocol":   "HTTP only",
						"suggestion": "Use a URL: http://localhost" + global.MongoDB_ServerConfig.Address,
					},
				})
			}

			logger.WithRequest(c).WithFields(map[string]interface{}{
				"code":      code,
				"errorCode": errorCode,
				"message":   message,
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID - identificador único por request para rastreio
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// 2. CORS - precisa vir antes dos demais para atender preflight
	corsOrigins := global.MongoDB_ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.MongoDB_ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60, // Cache dos preflights (24 horas)
	}))

	// 3. Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate limiting por IP
	if global.MongoDB_ServerConfig.RateLimit_Enabled && global.MongoDB_ServerConfig.RateLimit_Max > 0 {
		rateLimitMax := global.MongoDB_ServerConfig.RateLimit_Max
		rateLimitWindow := time.Duration(global.MongoDB_ServerConfig.RateLimit_Window) * time.Second
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimitMax,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": "Muitas requisições, tente novamente em instantes",
					"status":  "error",
				})
			},
			SkipFailedRequests:     false,
			SkipSuccessfulRequests: false,
			Next: func(c fiber.Ctx) bool {
				// Health check e preflights ficam fora do rate limit
				return c.Path() == "/health" ||
					c.Path() == "/api/system/health" ||
					c.Method() == "OPTIONS"
			},
		}))
		log := logger.GetAppLogger()
		log.Infof("Rate limiting enabled: %d requests per %d seconds", rateLimitMax, global.MongoDB_ServerConfig.RateLimit_Window)
	} else {
		log := logger.GetAppLogger()
		log.Info("Rate limiting disabled")
	}

	// 5. Recover
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic":   e,
				"headers": c.GetReqHeaders(),
				"body":    string(c.Body()),
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusInternalServerError,
				"message": "Internal Server Error",
				"error":   fmt.Sprintf("%v", e),
				"time":    time.Now().Format(time.RFC3339),
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health" ||
				c.Path() == "/api/system/health"
		},
	}))

	// Rotas de todos os domains
	if err := router.SetupRoutes(app,
		registerSystemRoutes,
		authrouter.Register,
		catalogorouter.Register,
		pedidorouter.Register,
		entregadorrouter.Register,
		cupomrouter.Register,
		adminrouter.Register,
	); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}
