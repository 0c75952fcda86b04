// Package entregadorsvc - service do domain entregador.
package entregadorsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	entregadordto "github.com/Bryanhudson603/extraplusdelivery/internal/api/entregador/dto"
	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/entregador/models"
	pedidomodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/models"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
)

// EntregadorService é o service dos entregadores
type EntregadorService struct {
	*basesvc.BaseServiceMongoImpl[models.Entregador]
	pedidoService *basesvc.BaseServiceMongoImpl[pedidomodels.Pedido]
}

// NewEntregadorService cria um EntregadorService novo
func NewEntregadorService() (*EntregadorService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Entregadores)
	if !exist {
		return nil, fmt.Errorf("failed to get entregadores collection: %v", common.ErrNotFound)
	}
	pedidoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Pedidos)
	if !exist {
		return nil, fmt.Errorf("failed to get pedidos collection: %v", common.ErrNotFound)
	}
	return &EntregadorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Entregador](collection),
		pedidoService:        basesvc.NewBaseServiceMongo[pedidomodels.Pedido](pedidoCollection),
	}, nil
}

// ListEntregadores lista todos os entregadores
func (s *EntregadorService) ListEntregadores(ctx context.Context) ([]models.Entregador, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	entregadores, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	if entregadores == nil {
		entregadores = []models.Entregador{}
	}
	return entregadores, nil
}

// CriarEntregador cria um entregador a partir do input.
// Nome vazio vira "Entregador"; ativo nasce true.
func (s *EntregadorService) CriarEntregador(ctx context.Context, input *entregadordto.EntregadorCreateInput) (models.Entregador, error) {
	entregador := models.Entregador{
		Nome:     strings.TrimSpace(input.Nome),
		Telefone: strings.TrimSpace(input.Telefone),
		Ativo:    true,
	}
	if entregador.Nome == "" {
		entregador.Nome = "Entregador"
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, entregador)
}

// AtualizarEntregador altera só os campos presentes no input.
// Nome presente mas vazio mantém o nome atual.
func (s *EntregadorService) AtualizarEntregador(ctx context.Context, id primitive.ObjectID, input *entregadordto.EntregadorUpdateInput) (models.Entregador, error) {
	set := make(map[string]interface{})
	if input.Nome != nil {
		if nome := strings.TrimSpace(*input.Nome); nome != "" {
			set["nome"] = nome
		}
	}
	if input.Telefone != nil {
		set["telefone"] = strings.TrimSpace(*input.Telefone)
	}
	if input.Ativo != nil {
		set["ativo"] = *input.Ativo
	}
	if len(set) == 0 {
		return s.BaseServiceMongoImpl.FindOneById(ctx, id)
	}

	updateData := &basesvc.UpdateData{Set: set}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

// Estatisticas conta as entregas por entregador em todos os pedidos que
// o referenciam, em ordem decrescente de entregas.
func (s *EntregadorService) Estatisticas(ctx context.Context) ([]models.EntregadorEstatistica, error) {
	pedidos, err := s.pedidoService.Find(ctx, bson.M{"entregadorId": bson.M{"$nin": []interface{}{"", nil}}}, nil)
	if err != nil {
		return nil, err
	}

	contagem := make(map[string]*models.EntregadorEstatistica)
	for _, p := range pedidos {
		if p.EntregadorID == "" {
			continue
		}
		stat, ok := contagem[p.EntregadorID]
		if !ok {
			nome := p.EntregadorNome
			if nome == "" {
				if primitive.IsValidObjectID(p.EntregadorID) {
					if oid, err := primitive.ObjectIDFromHex(p.EntregadorID); err == nil {
						if entregador, err := s.BaseServiceMongoImpl.FindOneById(ctx, oid); err == nil {
							nome = entregador.Nome
						}
					}
				}
				if nome == "" {
					nome = "Entregador"
				}
			}
			stat = &models.EntregadorEstatistica{EntregadorID: p.EntregadorID, Nome: nome}
			contagem[p.EntregadorID] = stat
		}
		stat.Entregas++
	}

	lista := make([]models.EntregadorEstatistica, 0, len(contagem))
	for _, stat := range contagem {
		lista = append(lista, *stat)
	}
	sort.Slice(lista, func(i, j int) bool { return lista[i].Entregas > lista[j].Entregas })
	return lista, nil
}
