// Package adminhdl - handlers dos agregados administrativos.
package adminhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	admindto "github.com/Bryanhudson603/extraplusdelivery/internal/api/admin/dto"
	adminsvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/admin/service"
	basehdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/handler"
	cupomsvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
)

// AdminHandler atende o dashboard, os relatórios e a gestão de clientes
type AdminHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	AdminService *adminsvc.AdminService
	CupomService *cupomsvc.CupomService
}

// NewAdminHandler cria um AdminHandler novo
func NewAdminHandler() (*AdminHandler, error) {
	adminService, err := adminsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	cupomService, err := cupomsvc.NewCupomService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cupom service: %v", err)
	}
	return &AdminHandler{
		BaseHandler:  &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		AdminService: adminService,
		CupomService: cupomService,
	}, nil
}

// HandleDashboard devolve os números do painel do admin
func (h *AdminHandler) HandleDashboard(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		dashboard, err := h.AdminService.Dashboard(c.Context())
		h.HandleResponse(c, dashboard, err)
		return nil
	})
}

// HandleRelatorioDias devolve o relatório diário dos últimos 30 dias
func (h *AdminHandler) HandleRelatorioDias(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		relatorio, err := h.AdminService.RelatorioDias(c.Context())
		h.HandleResponse(c, relatorio, err)
		return nil
	})
}

// HandleListClientes lista os clientes agregados dos pedidos
func (h *AdminHandler) HandleListClientes(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		clientes, err := h.AdminService.ListClientes(c.Context())
		h.HandleResponse(c, clientes, err)
		return nil
	})
}

// HandleObterCliente busca um cliente pela chave; desconhecido devolve null
func (h *AdminHandler) HandleObterCliente(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		cliente, err := h.AdminService.ObterCliente(c.Context(), c.Params("id"))
		if err == nil && cliente == nil {
			h.HandleResponse(c, nil, nil)
			return nil
		}
		h.HandleResponse(c, cliente, err)
		return nil
	})
}

// HandleAtualizarCliente grava os ajustes de cadastro da chave
func (h *AdminHandler) HandleAtualizarCliente(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input admindto.ClienteUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}

		cliente, err := h.AdminService.AtualizarCliente(c.Context(), c.Params("id"), &input)
		h.HandleResponse(c, cliente, err)
		return nil
	})
}

// HandleCreditarCarteira soma saldo à carteira da chave
func (h *AdminHandler) HandleCreditarCarteira(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input admindto.CarteiraCreditoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}

		resultado, err := h.AdminService.CreditarCarteira(c.Context(), c.Params("id"), input.Valor)
		h.HandleResponse(c, resultado, err)
		return nil
	})
}

// HandleListPedidosCliente lista os pedidos da chave, mais recentes primeiro
func (h *AdminHandler) HandleListPedidosCliente(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pedidos, err := h.AdminService.ListPedidosCliente(c.Context(), c.Params("id"))
		h.HandleResponse(c, pedidos, err)
		return nil
	})
}

// HandleListCuponsDoCliente lista os cupons atribuídos à chave
func (h *AdminHandler) HandleListCuponsDoCliente(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		cupons, err := h.CupomService.ListCuponsDoCliente(c.Context(), c.Params("id"))
		h.HandleResponse(c, cupons, err)
		return nil
	})
}
