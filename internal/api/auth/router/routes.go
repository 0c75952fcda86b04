// Package authrouter - rotas do domain auth.
package authrouter

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/handler"
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/router"
)

// Register registra as rotas públicas de autenticação.
// Login, registro e listagem de lojas não exigem token.
func Register(api fiber.Router, r *router.Router) error {
	authHandler, err := authhdl.NewAuthHandler()
	if err != nil {
		return err
	}

	auth := api.Group("/auth")
	auth.Get("/lojas", authHandler.HandleListLojas)
	auth.Post("/login-admin", authHandler.HandleLoginAdmin)
	auth.Post("/login-cliente", authHandler.HandleLoginCliente)
	auth.Post("/register-cliente", authHandler.HandleRegisterCliente)

	return nil
}
