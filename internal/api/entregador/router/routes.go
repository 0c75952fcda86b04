// Package entregadorrouter - rotas do domain entregador.
package entregadorrouter

import (
	"github.com/gofiber/fiber/v3"

	entregadorhdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/entregador/handler"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/middleware"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/router"
)

// Register registra as rotas de entregadores (escopo admin).
// A rota de estatísticas vem antes do PUT /:id para não colidir.
func Register(api fiber.Router, r *router.Router) error {
	entregadorHandler, err := entregadorhdl.NewEntregadorHandler()
	if err != nil {
		return err
	}

	adminAuth := middleware.AuthMiddleware("admin")
	router.RegisterRouteWithMiddleware(api, "/admin/entregadores", "GET", "/estatisticas", []fiber.Handler{adminAuth}, entregadorHandler.HandleEstatisticas)
	router.RegisterRouteWithMiddleware(api, "/admin/entregadores", "GET", "/", []fiber.Handler{adminAuth}, entregadorHandler.HandleListEntregadores)
	router.RegisterRouteWithMiddleware(api, "/admin/entregadores", "POST", "/", []fiber.Handler{adminAuth}, entregadorHandler.HandleCriarEntregador)
	router.RegisterRouteWithMiddleware(api, "/admin/entregadores", "PUT", "/:id", []fiber.Handler{adminAuth}, entregadorHandler.HandleAtualizarEntregador)

	return nil
}
