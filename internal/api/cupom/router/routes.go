// Package cupomrouter - rotas do domain cupom.
package cupomrouter

import (
	"github.com/gofiber/fiber/v3"

	cupomhdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/handler"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/middleware"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/router"
)

// Register registra as rotas de cupons (escopo admin)
func Register(api fiber.Router, r *router.Router) error {
	cupomHandler, err := cupomhdl.NewCupomHandler()
	if err != nil {
		return err
	}

	adminAuth := middleware.AuthMiddleware("admin")
	router.RegisterRouteWithMiddleware(api, "/admin/cupons", "GET", "/", []fiber.Handler{adminAuth}, cupomHandler.HandleListCupons)
	router.RegisterRouteWithMiddleware(api, "/admin/cupons", "POST", "/", []fiber.Handler{adminAuth}, cupomHandler.HandleCriarCupom)
	router.RegisterRouteWithMiddleware(api, "/admin/cupons", "POST", "/:codigo/enviar", []fiber.Handler{adminAuth}, cupomHandler.HandleEnviarCupom)

	return nil
}
