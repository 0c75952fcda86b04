// Package catalogorouter - rotas do domain catálogo.
package catalogorouter

import (
	"github.com/gofiber/fiber/v3"

	catalogohdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/handler"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/middleware"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/router"
)

// Register registra as rotas do catálogo.
// A vitrine é pública; o CRUD de produtos fica sob /admin com escopo admin.
func Register(api fiber.Router, r *router.Router) error {
	catalogoHandler, err := catalogohdl.NewCatalogoHandler()
	if err != nil {
		return err
	}
	produtoAdminHandler, err := catalogohdl.NewProdutoAdminHandler()
	if err != nil {
		return err
	}

	catalogo := api.Group("/catalogo")
	catalogo.Get("/categorias", catalogoHandler.HandleListCategorias)
	catalogo.Get("/produtos", catalogoHandler.HandleListProdutos)
	catalogo.Get("/produtos-mais-pedidos", catalogoHandler.HandleListProdutosMaisPedidos)

	adminAuth := middleware.AuthMiddleware("admin")
	router.RegisterRouteWithMiddleware(api, "/admin/produtos", "GET", "/", []fiber.Handler{adminAuth}, produtoAdminHandler.HandleListProdutos)
	router.RegisterRouteWithMiddleware(api, "/admin/produtos", "POST", "/", []fiber.Handler{adminAuth}, produtoAdminHandler.HandleSalvarProduto)
	router.RegisterRouteWithMiddleware(api, "/admin/produtos", "PUT", "/:id", []fiber.Handler{adminAuth}, produtoAdminHandler.HandleAtualizarProduto)
	router.RegisterRouteWithMiddleware(api, "/admin/produtos", "DELETE", "/:id", []fiber.Handler{adminAuth}, produtoAdminHandler.HandleExcluirProduto)

	// Rotas CRUD genéricas para ferramentas internas do admin
	r.RegisterCRUDRoutes(api, "/admin/produtos-crud", produtoAdminHandler, router.ReadWriteConfig, "admin")

	return nil
}
