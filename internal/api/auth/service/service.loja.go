// Package authsvc - services do domain auth (loja, admin, cliente).
package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	authdto "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/dto"
	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/models"
	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
)

// LojaService é o service das lojas
type LojaService struct {
	*basesvc.BaseServiceMongoImpl[models.Loja]
}

// NewLojaService cria um LojaService novo
func NewLojaService() (*LojaService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Lojas)
	if !exist {
		return nil, fmt.Errorf("failed to get lojas collection: %v", common.ErrNotFound)
	}
	return &LojaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Loja](collection),
	}, nil
}

// LojaItemDe converte a loja persistida no formato público
// {id, nome, slug}, onde id é o slug da loja.
func LojaItemDe(loja models.Loja) authdto.LojaItem {
	return authdto.LojaItem{ID: loja.Slug, Nome: loja.Nome, Slug: loja.Slug}
}

// ListLojas lista as lojas no formato público {id, nome, slug}
func (s *LojaService) ListLojas(ctx context.Context) ([]authdto.LojaItem, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "nome", Value: 1}})
	lojas, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	items := make([]authdto.LojaItem, 0, len(lojas))
	for _, loja := range lojas {
		items = append(items, LojaItemDe(loja))
	}
	return items, nil
}

// FindBySlug busca uma loja pelo slug
func (s *LojaService) FindBySlug(ctx context.Context, slug string) (models.Loja, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"slug": slug}, nil)
}
