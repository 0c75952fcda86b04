// Package pedidorouter - rotas do domain pedido.
package pedidorouter

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Bryanhudson603/extraplusdelivery/internal/api/middleware"
	pedidohdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/handler"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/router"
)

// Register registra as rotas de pedidos.
// Listagem e criação valem para qualquer conta autenticada; as
// transições de status e a atribuição de entregador são do admin.
func Register(api fiber.Router, r *router.Router) error {
	pedidoHandler, err := pedidohdl.NewPedidoHandler()
	if err != nil {
		return err
	}

	anyAuth := middleware.AuthMiddleware("")
	adminAuth := middleware.AuthMiddleware("admin")

	router.RegisterRouteWithMiddleware(api, "/pedidos", "GET", "/", []fiber.Handler{anyAuth}, pedidoHandler.HandleListPedidos)
	router.RegisterRouteWithMiddleware(api, "/pedidos", "POST", "/", []fiber.Handler{anyAuth}, pedidoHandler.HandleCriarPedido)
	router.RegisterRouteWithMiddleware(api, "/pedidos", "POST", "/:id/status", []fiber.Handler{adminAuth}, pedidoHandler.HandleAtualizarStatus)
	router.RegisterRouteWithMiddleware(api, "/pedidos", "POST", "/:id/entregador", []fiber.Handler{adminAuth}, pedidoHandler.HandleAtualizarEntregador)

	return nil
}
