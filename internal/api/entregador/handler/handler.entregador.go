// Package entregadorhdl - handlers do domain entregador.
package entregadorhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/handler"
	entregadordto "github.com/Bryanhudson603/extraplusdelivery/internal/api/entregador/dto"
	entregadormodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/entregador/models"
	entregadorsvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/entregador/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// EntregadorHandler atende as rotas de entregadores do admin
type EntregadorHandler struct {
	*basehdl.BaseHandler[entregadormodels.Entregador, entregadordto.EntregadorCreateInput, entregadordto.EntregadorUpdateInput]
	EntregadorService *entregadorsvc.EntregadorService
}

// NewEntregadorHandler cria um EntregadorHandler novo
func NewEntregadorHandler() (*EntregadorHandler, error) {
	entregadorService, err := entregadorsvc.NewEntregadorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create entregador service: %v", err)
	}
	return &EntregadorHandler{
		BaseHandler:       basehdl.NewBaseHandler[entregadormodels.Entregador, entregadordto.EntregadorCreateInput, entregadordto.EntregadorUpdateInput](entregadorService.BaseServiceMongoImpl),
		EntregadorService: entregadorService,
	}, nil
}

// HandleListEntregadores lista todos os entregadores
func (h *EntregadorHandler) HandleListEntregadores(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		entregadores, err := h.EntregadorService.ListEntregadores(c.Context())
		h.HandleResponse(c, entregadores, err)
		return nil
	})
}

// HandleCriarEntregador cria um entregador
func (h *EntregadorHandler) HandleCriarEntregador(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input entregadordto.EntregadorCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}

		entregador, err := h.EntregadorService.CriarEntregador(c.Context(), &input)
		h.HandleResponse(c, entregador, err)
		return nil
	})
}

// HandleAtualizarEntregador altera os campos presentes no body
func (h *EntregadorHandler) HandleAtualizarEntregador(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("O ID '%s' não está no formato de ObjectID do MongoDB", id), common.StatusBadRequest, nil))
			return nil
		}

		var input entregadordto.EntregadorUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}

		entregador, err := h.EntregadorService.AtualizarEntregador(c.Context(), utility.String2ObjectID(id), &input)
		h.HandleResponse(c, entregador, err)
		return nil
	})
}

// HandleEstatisticas lista as contagens de entrega por entregador
func (h *EntregadorHandler) HandleEstatisticas(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stats, err := h.EntregadorService.Estatisticas(c.Context())
		h.HandleResponse(c, stats, err)
		return nil
	})
}
