package basesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
)

// RelationshipCheck define uma relação a conferir antes de remover
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists confere se algum documento de outra collection referencia este registro
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Collection '%s' não encontrada para conferir a relação", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Não é possível remover o registro: %d registro(s) na collection '%s' referenciam este registro", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount retorna quantos documentos referenciam este registro
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Collection '%s' não encontrada", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteEntregador confere as relações do entregador antes de remover
func ValidateBeforeDeleteEntregador(ctx context.Context, entregadorID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Pedidos, FieldName: "entregadorId", ErrorMessage: "Não é possível remover o entregador: %d pedido(s) estão atribuídos a ele."},
	}
	return CheckRelationshipExists(ctx, entregadorID, checks)
}

// ValidateBeforeDeleteCupom confere as relações do cupom antes de remover
func ValidateBeforeDeleteCupom(ctx context.Context, cupomID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.CupomClientes, FieldName: "cupomId", ErrorMessage: "Não é possível remover o cupom: %d atribuição(ões) de cliente referenciam este cupom."},
	}
	return CheckRelationshipExists(ctx, cupomID, checks)
}
