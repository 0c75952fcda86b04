// Package authhdl - handlers do domain auth.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/dto"
	authsvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/service"
	basehdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/handler"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/logger"
)

// AuthHandler atende login, registro e listagem de lojas
type AuthHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	AdminService   *authsvc.AdminService
	ClienteService *authsvc.ClienteService
	LojaService    *authsvc.LojaService
}

// NewAuthHandler cria um AuthHandler novo
func NewAuthHandler() (*AuthHandler, error) {
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	clienteService, err := authsvc.NewClienteService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cliente service: %v", err)
	}
	lojaService, err := authsvc.NewLojaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create loja service: %v", err)
	}
	return &AuthHandler{
		BaseHandler:    &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		AdminService:   adminService,
		ClienteService: clienteService,
		LojaService:    lojaService,
	}, nil
}

// HandleListLojas lista as lojas no formato público {id, nome}
func (h *AuthHandler) HandleListLojas(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		lojas, err := h.LojaService.ListLojas(c.Context())
		h.HandleResponse(c, lojas, err)
		return nil
	})
}

// HandleLoginAdmin autentica um administrador por username e senha
func (h *AuthHandler) HandleLoginAdmin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginAdminInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.AdminService.LoginAdmin(c.Context(), &input)
		if err == nil {
			logger.LogAuth("login_admin", c, map[string]interface{}{"username": input.Username})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleLoginCliente autentica um cliente por telefone e senha
func (h *AuthHandler) HandleLoginCliente(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginClienteInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.ClienteService.LoginCliente(c.Context(), &input)
		if err == nil {
			logger.LogAuth("login_cliente", c, map[string]interface{}{"telefone": input.Telefone})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleRegisterCliente registra um cliente novo na loja padrão
func (h *AuthHandler) HandleRegisterCliente(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RegisterClienteInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.ClienteService.RegisterCliente(c.Context(), &input)
		if err == nil {
			logger.LogAuth("register_cliente", c, map[string]interface{}{"telefone": input.Telefone})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}
