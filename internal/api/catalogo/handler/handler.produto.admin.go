package catalogohdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/handler"
	catalogodto "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/dto"
	catalogomodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/models"
	catalogosvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/logger"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// ProdutoAdminHandler atende o CRUD de produtos do admin
type ProdutoAdminHandler struct {
	*basehdl.BaseHandler[catalogomodels.Produto, catalogodto.ProdutoInput, catalogodto.ProdutoInput]
	ProdutoService *catalogosvc.ProdutoService
}

// NewProdutoAdminHandler cria um ProdutoAdminHandler novo
func NewProdutoAdminHandler() (*ProdutoAdminHandler, error) {
	produtoService, err := catalogosvc.NewProdutoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create produto service: %v", err)
	}
	handler := &ProdutoAdminHandler{
		BaseHandler:    basehdl.NewBaseHandler[catalogomodels.Produto, catalogodto.ProdutoInput, catalogodto.ProdutoInput](produtoService.BaseServiceMongoImpl),
		ProdutoService: produtoService,
	}
	return handler, nil
}

// HandleListProdutos lista todos os produtos (visão completa do admin)
func (h *ProdutoAdminHandler) HandleListProdutos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		produtos, err := h.ProdutoService.ListAdmin(c.Context())
		h.HandleResponse(c, produtos, err)
		return nil
	})
}

// HandleSalvarProduto cria (ou sobrescreve, quando o body traz id) um produto
func (h *ProdutoAdminHandler) HandleSalvarProduto(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogodto.ProdutoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		produto, err := h.ProdutoService.SalvarProduto(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("create", "produto", produto.ID.Hex(), c, map[string]interface{}{"nome": produto.Nome})
		}
		h.HandleResponse(c, produto, err)
		return nil
	})
}

// HandleAtualizarProduto sobrescreve o produto do id com o body
func (h *ProdutoAdminHandler) HandleAtualizarProduto(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("O ID '%s' não está no formato de ObjectID do MongoDB", id), common.StatusBadRequest, nil))
			return nil
		}

		var input catalogodto.ProdutoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		produto, err := h.ProdutoService.AtualizarProduto(c.Context(), utility.String2ObjectID(id), &input)
		if err == nil {
			logger.LogCRUD("update", "produto", id, c, map[string]interface{}{"nome": produto.Nome})
		}
		h.HandleResponse(c, produto, err)
		return nil
	})
}

// HandleExcluirProduto remove o produto do id
func (h *ProdutoAdminHandler) HandleExcluirProduto(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("O ID '%s' não está no formato de ObjectID do MongoDB", id), common.StatusBadRequest, nil))
			return nil
		}

		err := h.ProdutoService.ExcluirProduto(c.Context(), utility.String2ObjectID(id))
		if err == nil {
			logger.LogCRUD("delete", "produto", id, c, nil)
		}
		h.HandleResponse(c, fiber.Map{"ok": err == nil}, err)
		return nil
	})
}
