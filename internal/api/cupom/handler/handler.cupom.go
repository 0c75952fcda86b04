// Package cupomhdl - handlers do domain cupom.
package cupomhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/handler"
	cupomdto "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/dto"
	cupommodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/models"
	cupomsvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
)

// CupomHandler atende as rotas de cupons do admin
type CupomHandler struct {
	*basehdl.BaseHandler[cupommodels.Cupom, cupomdto.CupomCreateInput, cupomdto.CupomCreateInput]
	CupomService *cupomsvc.CupomService
}

// NewCupomHandler cria um CupomHandler novo
func NewCupomHandler() (*CupomHandler, error) {
	cupomService, err := cupomsvc.NewCupomService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cupom service: %v", err)
	}
	return &CupomHandler{
		BaseHandler:  basehdl.NewBaseHandler[cupommodels.Cupom, cupomdto.CupomCreateInput, cupomdto.CupomCreateInput](cupomService.BaseServiceMongoImpl),
		CupomService: cupomService,
	}, nil
}

// HandleListCupons lista os cupons por validoDe decrescente
func (h *CupomHandler) HandleListCupons(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		cupons, err := h.CupomService.ListCupons(c.Context())
		h.HandleResponse(c, cupons, err)
		return nil
	})
}

// HandleCriarCupom cria um cupom; código repetido devolve o existente
func (h *CupomHandler) HandleCriarCupom(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input cupomdto.CupomCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		cupom, err := h.CupomService.CriarCupom(c.Context(), &input)
		h.HandleResponse(c, cupom, err)
		return nil
	})
}

// HandleEnviarCupom atribui o cupom às chaves de cliente do body
func (h *CupomHandler) HandleEnviarCupom(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		codigo := c.Params("codigo")

		var input cupomdto.EnviarCupomInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}

		resultado, err := h.CupomService.EnviarCupom(c.Context(), codigo, input.Clientes)
		h.HandleResponse(c, resultado, err)
		return nil
	})
}
