// Package adminrouter - rotas dos agregados administrativos.
package adminrouter

import (
	"github.com/gofiber/fiber/v3"

	adminhdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/admin/handler"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/middleware"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/router"
)

// Register registra as rotas do painel do admin (escopo admin)
func Register(api fiber.Router, r *router.Router) error {
	adminHandler, err := adminhdl.NewAdminHandler()
	if err != nil {
		return err
	}

	adminAuth := []fiber.Handler{middleware.AuthMiddleware("admin")}

	router.RegisterRouteWithMiddleware(api, "/admin", "GET", "/dashboard", adminAuth, adminHandler.HandleDashboard)
	router.RegisterRouteWithMiddleware(api, "/admin", "GET", "/relatorios/dias", adminAuth, adminHandler.HandleRelatorioDias)

	router.RegisterRouteWithMiddleware(api, "/admin/clientes", "GET", "/", adminAuth, adminHandler.HandleListClientes)
	router.RegisterRouteWithMiddleware(api, "/admin/clientes", "GET", "/:id", adminAuth, adminHandler.HandleObterCliente)
	router.RegisterRouteWithMiddleware(api, "/admin/clientes", "PUT", "/:id", adminAuth, adminHandler.HandleAtualizarCliente)
	router.RegisterRouteWithMiddleware(api, "/admin/clientes", "POST", "/:id/carteira", adminAuth, adminHandler.HandleCreditarCarteira)
	router.RegisterRouteWithMiddleware(api, "/admin/clientes", "GET", "/:id/pedidos", adminAuth, adminHandler.HandleListPedidosCliente)
	router.RegisterRouteWithMiddleware(api, "/admin/clientes", "GET", "/:id/cupons", adminAuth, adminHandler.HandleListCuponsDoCliente)

	return nil
}
