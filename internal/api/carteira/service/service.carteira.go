// Package carteirasvc - service do domain carteira.
package carteirasvc

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/carteira/models"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// CarteiraService é o service das carteiras dos clientes
type CarteiraService struct {
	*basesvc.BaseServiceMongoImpl[models.Carteira]
}

// NewCarteiraService cria um CarteiraService novo
func NewCarteiraService() (*CarteiraService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Carteiras)
	if !exist {
		return nil, fmt.Errorf("failed to get carteiras collection: %v", common.ErrNotFound)
	}
	return &CarteiraService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Carteira](collection),
	}, nil
}

// FindByKey busca a carteira da chave de cliente
func (s *CarteiraService) FindByKey(ctx context.Context, clienteKey string) (models.Carteira, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"clienteKey": clienteKey}, nil)
}

// SaldoByKey devolve o saldo da chave; carteira inexistente conta como zero
func (s *CarteiraService) SaldoByKey(ctx context.Context, clienteKey string) (float64, error) {
	carteira, err := s.FindByKey(ctx, clienteKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return carteira.Saldo, nil
}

// Creditar soma valor ao saldo da chave, criando a carteira se não houver.
// Valor não positivo ou não finito é no-op e devolve o saldo atual.
func (s *CarteiraService) Creditar(ctx context.Context, clienteKey string, valor float64) (float64, error) {
	if !(valor > 0) || math.IsInf(valor, 0) || math.IsNaN(valor) {
		return s.SaldoByKey(ctx, clienteKey)
	}

	carteira, err := s.FindByKey(ctx, clienteKey)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return 0, err
		}
		nova := models.Carteira{ClienteKey: clienteKey, Saldo: utility.Round2(valor)}
		criada, err := s.BaseServiceMongoImpl.InsertOne(ctx, nova)
		if err != nil {
			return 0, err
		}
		return criada.Saldo, nil
	}

	novoSaldo := utility.Round2(carteira.Saldo + valor)
	updateData := &basesvc.UpdateData{Set: map[string]interface{}{"saldo": novoSaldo}}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, carteira.ID, updateData); err != nil {
		return 0, err
	}
	return novoSaldo, nil
}

// SaldoAposDebito calcula o saldo restante de um débito integral.
// Saldo menor que o valor rejeita o débito com ErrSaldoInsuficiente.
func SaldoAposDebito(saldo, valor float64) (float64, error) {
	if saldo < valor {
		return 0, common.ErrSaldoInsuficiente
	}
	return utility.Round2(saldo - valor), nil
}

// DebitoParcialAplicavel calcula quanto do valor o saldo cobre num
// pagamento parcial: min(saldo, valor), zero quando não há saldo.
func DebitoParcialAplicavel(saldo, valor float64) float64 {
	if saldo <= 0 {
		return 0
	}
	return math.Min(saldo, valor)
}

// Debitar subtrai valor do saldo da chave.
// Carteira inexistente conta como saldo zero e rejeita qualquer débito
// positivo.
func (s *CarteiraService) Debitar(ctx context.Context, clienteKey string, valor float64) (float64, error) {
	carteira, err := s.FindByKey(ctx, clienteKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return SaldoAposDebito(0, valor)
		}
		return 0, err
	}

	novoSaldo, err := SaldoAposDebito(carteira.Saldo, valor)
	if err != nil {
		return 0, err
	}

	updateData := &basesvc.UpdateData{Set: map[string]interface{}{"saldo": novoSaldo}}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, carteira.ID, updateData); err != nil {
		return 0, err
	}
	return novoSaldo, nil
}

// DebitarParcial subtrai min(saldo, valor) e devolve quanto foi usado.
// Sem carteira ou sem saldo, devolve zero sem erro.
func (s *CarteiraService) DebitarParcial(ctx context.Context, clienteKey string, valor float64) (float64, error) {
	carteira, err := s.FindByKey(ctx, clienteKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	aplicavel := DebitoParcialAplicavel(carteira.Saldo, valor)
	if aplicavel == 0 {
		return 0, nil
	}

	novoSaldo := utility.Round2(carteira.Saldo - aplicavel)
	updateData := &basesvc.UpdateData{Set: map[string]interface{}{"saldo": novoSaldo}}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, carteira.ID, updateData); err != nil {
		return 0, err
	}
	return aplicavel, nil
}
