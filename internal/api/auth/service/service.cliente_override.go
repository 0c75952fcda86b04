package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/models"
	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
)

// ClienteOverrideService é o service dos ajustes de cadastro por cliente
type ClienteOverrideService struct {
	*basesvc.BaseServiceMongoImpl[models.ClienteOverride]
}

// NewClienteOverrideService cria um ClienteOverrideService novo
func NewClienteOverrideService() (*ClienteOverrideService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ClienteOverrides)
	if !exist {
		return nil, fmt.Errorf("failed to get cliente_overrides collection: %v", common.ErrNotFound)
	}
	return &ClienteOverrideService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ClienteOverride](collection),
	}, nil
}

// UpsertByClienteKey grava (ou cria) o override da chave de cliente.
// Campos vazios no input não apagam valores já gravados.
func (s *ClienteOverrideService) UpsertByClienteKey(ctx context.Context, clienteKey string, nome, telefone, endereco string) (models.ClienteOverride, error) {
	set := map[string]interface{}{"clienteKey": clienteKey}
	if nome != "" {
		set["nome"] = nome
	}
	if telefone != "" {
		set["telefone"] = telefone
	}
	if endereco != "" {
		set["endereco"] = endereco
	}
	updateData := &basesvc.UpdateData{Set: set}
	return s.BaseServiceMongoImpl.Upsert(ctx, bson.M{"clienteKey": clienteKey}, updateData)
}

// FindByClienteKey busca o override da chave de cliente
func (s *ClienteOverrideService) FindByClienteKey(ctx context.Context, clienteKey string) (models.ClienteOverride, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"clienteKey": clienteKey}, nil)
}
