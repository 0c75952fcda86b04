// Package catalogohdl - handlers do domain catálogo.
package catalogohdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/handler"
	catalogosvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/service"
)

// CatalogoHandler atende as rotas públicas do catálogo
type CatalogoHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	ProdutoService *catalogosvc.ProdutoService
}

// NewCatalogoHandler cria um CatalogoHandler novo
func NewCatalogoHandler() (*CatalogoHandler, error) {
	produtoService, err := catalogosvc.NewProdutoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create produto service: %v", err)
	}
	return &CatalogoHandler{
		BaseHandler:    &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		ProdutoService: produtoService,
	}, nil
}

// HandleListCategorias devolve a lista fixa de categorias
func (h *CatalogoHandler) HandleListCategorias(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, catalogosvc.Categorias, nil)
		return nil
	})
}

// HandleListProdutos lista os produtos ativos na projeção pública
func (h *CatalogoHandler) HandleListProdutos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		items, err := h.ProdutoService.ListAtivos(c.Context())
		h.HandleResponse(c, items, err)
		return nil
	})
}

// HandleListProdutosMaisPedidos lista os destaques do catálogo (até 4)
func (h *CatalogoHandler) HandleListProdutosMaisPedidos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		items, err := h.ProdutoService.ListMaisPedidos(c.Context())
		h.HandleResponse(c, items, err)
		return nil
	})
}
