// Package pedidohdl - handlers do domain pedido.
package pedidohdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/handler"
	pedidodto "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/dto"
	pedidomodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/models"
	pedidosvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// PedidoHandler atende as rotas de pedidos
type PedidoHandler struct {
	*basehdl.BaseHandler[pedidomodels.Pedido, pedidodto.CriarPedidoInput, pedidodto.AtualizarStatusInput]
	PedidoService *pedidosvc.PedidoService
}

// NewPedidoHandler cria um PedidoHandler novo
func NewPedidoHandler() (*PedidoHandler, error) {
	pedidoService, err := pedidosvc.NewPedidoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create pedido service: %v", err)
	}
	return &PedidoHandler{
		BaseHandler:   basehdl.NewBaseHandler[pedidomodels.Pedido, pedidodto.CriarPedidoInput, pedidodto.AtualizarStatusInput](pedidoService.BaseServiceMongoImpl),
		PedidoService: pedidoService,
	}, nil
}

// parsePedidoID valida o id dos params e devolve o ObjectID.
func (h *PedidoHandler) parsePedidoID(c fiber.Ctx) (primitive.ObjectID, bool) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		h.HandleResponse(c, nil, pedidosvc.ErrPedidoNaoEncontrado)
		return primitive.NilObjectID, false
	}
	return utility.String2ObjectID(id), true
}

// HandleListPedidos lista os pedidos do mais recente para o mais antigo
func (h *PedidoHandler) HandleListPedidos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pedidos, err := h.PedidoService.ListPedidos(c.Context())
		h.HandleResponse(c, pedidos, err)
		return nil
	})
}

// HandleCriarPedido converte o carrinho num pedido persistido
func (h *PedidoHandler) HandleCriarPedido(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input pedidodto.CriarPedidoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		pedido, err := h.PedidoService.CriarPedido(c.Context(), &input)
		h.HandleResponse(c, pedido, err)
		return nil
	})
}

// HandleAtualizarStatus aplica uma transição de status
func (h *PedidoHandler) HandleAtualizarStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, ok := h.parsePedidoID(c)
		if !ok {
			return nil
		}

		var input pedidodto.AtualizarStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		pedido, err := h.PedidoService.AtualizarStatus(c.Context(), id, &input)
		h.HandleResponse(c, pedido, err)
		return nil
	})
}

// HandleAtualizarEntregador grava o entregador no pedido
func (h *PedidoHandler) HandleAtualizarEntregador(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, ok := h.parsePedidoID(c)
		if !ok {
			return nil
		}

		var input pedidodto.AtualizarEntregadorInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		pedido, err := h.PedidoService.AtualizarEntregador(c.Context(), id, input.EntregadorID)
		h.HandleResponse(c, pedido, err)
		return nil
	})
}
