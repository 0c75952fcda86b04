// Package catalogosvc - services do domain catálogo.
package catalogosvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	catalogodto "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/dto"
	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/models"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// Categorias é a lista fixa de categorias do catálogo.
var Categorias = []catalogodto.CategoriaItem{
	{ID: "1", Nome: "Cervejas", Slug: "cervejas"},
	{ID: "2", Nome: "Refrigerantes", Slug: "refrigerantes"},
	{ID: "3", Nome: "Energéticos", Slug: "energeticos"},
	{ID: "4", Nome: "Destilados", Slug: "destilados"},
	{ID: "5", Nome: "Combos", Slug: "combos"},
	{ID: "6", Nome: "Outros", Slug: "outros"},
}

// ProdutoService é o service dos produtos do catálogo
type ProdutoService struct {
	*basesvc.BaseServiceMongoImpl[models.Produto]
}

// NewProdutoService cria um ProdutoService novo
func NewProdutoService() (*ProdutoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Produtos)
	if !exist {
		return nil, fmt.Errorf("failed to get produtos collection: %v", common.ErrNotFound)
	}
	return &ProdutoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Produto](collection),
	}, nil
}

// toClienteItem projeta o produto no formato público do catálogo.
// Produto sem imagem sai com o placeholder.
func toClienteItem(p models.Produto) catalogodto.ProdutoClienteItem {
	imagem := p.ImagemURL
	if imagem == "" {
		imagem = "/placeholder.svg"
	}
	return catalogodto.ProdutoClienteItem{
		ID:               p.ID.Hex(),
		Nome:             p.Nome,
		Imagem:           imagem,
		Preco:            p.Preco,
		PrecoPromocional: p.PrecoPromocional,
		Tags:             p.Tags,
		CategoriaID:      "c6",
		QuantidadePacote: p.QuantidadePacote,
		PrecoPacote:      p.PrecoPacote,
	}
}

// ListAtivos lista os produtos ativos na projeção pública
func (s *ProdutoService) ListAtivos(ctx context.Context) ([]catalogodto.ProdutoClienteItem, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	produtos, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	items := make([]catalogodto.ProdutoClienteItem, 0, len(produtos))
	for _, p := range produtos {
		items = append(items, toClienteItem(p))
	}
	return items, nil
}

// ListMaisPedidos lista até 4 produtos ativos marcados com a tag
// mais_vendido; sem nenhum marcado, cai nos 4 primeiros ativos.
func (s *ProdutoService) ListMaisPedidos(ctx context.Context) ([]catalogodto.ProdutoClienteItem, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	ativos, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}

	destaque := make([]models.Produto, 0, len(ativos))
	for _, p := range ativos {
		if utility.Contains(p.Tags, "mais_vendido") {
			destaque = append(destaque, p)
		}
	}
	top := destaque
	if len(top) == 0 {
		top = ativos
	}
	if len(top) > 4 {
		top = top[:4]
	}

	items := make([]catalogodto.ProdutoClienteItem, 0, len(top))
	for _, p := range top {
		items = append(items, toClienteItem(p))
	}
	return items, nil
}

// ListAdmin lista todos os produtos no formato completo (visão do admin)
func (s *ProdutoService) ListAdmin(ctx context.Context) ([]models.Produto, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	produtos, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	if produtos == nil {
		produtos = []models.Produto{}
	}
	return produtos, nil
}

// SalvarProduto cria ou sobrescreve um produto a partir do input do admin.
// Input sem id (ou com id fora do formato) cria um produto novo; com id
// existente, sobrescreve os campos no estilo do frontend antigo.
func (s *ProdutoService) SalvarProduto(ctx context.Context, input *catalogodto.ProdutoInput) (models.Produto, error) {
	produto := models.Produto{
		Nome:             input.Nome,
		Preco:            input.PrecoEfetivo(),
		PrecoPromocional: input.PrecoPromocional,
		Estoque:          input.Estoque,
		Tags:             input.Tags,
		Ativo:            input.Ativo == nil || *input.Ativo,
		ImagemURL:        input.ImagemURL,
		Categoria:        input.Categoria,
		Volume:           input.Volume,
		QuantidadePacote: input.QuantidadePacote,
		PrecoPacote:      input.PrecoPacote,
	}
	if produto.Tags == nil {
		produto.Tags = []string{}
	}

	if input.ID != "" && primitive.IsValidObjectID(input.ID) {
		id := utility.String2ObjectID(input.ID)
		set, err := utility.ToMap(produto)
		if err != nil {
			return models.Produto{}, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Erro ao converter o produto: %v", err), common.StatusInternalServerError, err)
		}
		// Sobrescrita completa, menos os timestamps (o service injeta updatedAt)
		delete(set, "createdAt")
		delete(set, "updatedAt")
		updateData := &basesvc.UpdateData{Set: set}
		atualizado, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
		if err == nil {
			return atualizado, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return models.Produto{}, err
		}
		// id informado mas inexistente: cria preservando o id
		produto.ID = id
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, produto)
}

// AtualizarProduto sobrescreve o produto do id com o input do admin
func (s *ProdutoService) AtualizarProduto(ctx context.Context, id primitive.ObjectID, input *catalogodto.ProdutoInput) (models.Produto, error) {
	input.ID = id.Hex()
	return s.SalvarProduto(ctx, input)
}

// ExcluirProduto remove o produto do id
func (s *ProdutoService) ExcluirProduto(ctx context.Context, id primitive.ObjectID) error {
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
