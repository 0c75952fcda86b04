// Package cupomsvc - services do domain cupom.
package cupomsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	cupomdto "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/dto"
	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/models"
	pedidomodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/models"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// CupomService é o service dos cupons e das atribuições por cliente
type CupomService struct {
	*basesvc.BaseServiceMongoImpl[models.Cupom]
	cupomClienteService *basesvc.BaseServiceMongoImpl[models.CupomCliente]
	pedidoService       *basesvc.BaseServiceMongoImpl[pedidomodels.Pedido]
}

// NewCupomService cria um CupomService novo
func NewCupomService() (*CupomService, error) {
	cupomCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Cupons)
	if !exist {
		return nil, fmt.Errorf("failed to get cupons collection: %v", common.ErrNotFound)
	}
	cupomClienteCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CupomClientes)
	if !exist {
		return nil, fmt.Errorf("failed to get cupom_clientes collection: %v", common.ErrNotFound)
	}
	pedidoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Pedidos)
	if !exist {
		return nil, fmt.Errorf("failed to get pedidos collection: %v", common.ErrNotFound)
	}

	return &CupomService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Cupom](cupomCollection),
		cupomClienteService:  basesvc.NewBaseServiceMongo[models.CupomCliente](cupomClienteCollection),
		pedidoService:        basesvc.NewBaseServiceMongo[pedidomodels.Pedido](pedidoCollection),
	}, nil
}

// NormalizarCodigo padroniza o código do cupom (trim + maiúsculas).
func NormalizarCodigo(codigo string) string {
	return strings.ToUpper(strings.TrimSpace(codigo))
}

// parseDataISO converte uma data RFC3339 em UnixMilli; vazio vira nil.
func parseDataISO(valor string) *int64 {
	if valor == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, valor)
	if err != nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// CriarCupom cria um cupom novo.
// Código já registrado devolve o cupom existente sem alterar nada.
func (s *CupomService) CriarCupom(ctx context.Context, input *cupomdto.CupomCreateInput) (models.Cupom, error) {
	codigo := NormalizarCodigo(input.Codigo)

	existente, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"codigo": codigo}, nil)
	if err == nil {
		return existente, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.Cupom{}, err
	}

	cupom := models.Cupom{
		Nome:               strings.TrimSpace(input.Nome),
		Codigo:             codigo,
		ValidoDe:           parseDataISO(input.ValidoDe),
		ValidoAte:          parseDataISO(input.ValidoAte),
		UsosPorCliente:     input.UsosPorCliente,
		Ativo:              input.Ativo == nil || *input.Ativo,
		DescontoPercentual: input.DescontoPercentual,
	}
	if input.QuantidadeTotal != nil && *input.QuantidadeTotal > 0 {
		total := *input.QuantidadeTotal
		cupom.QuantidadeTotal = &total
		restante := total
		cupom.QuantidadeRestante = &restante
	}
	if input.DescontoPercentual != nil && *input.DescontoPercentual <= 0 {
		cupom.DescontoPercentual = nil
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, cupom)
}

// ListCupons lista os cupons ordenados por validoDe decrescente
func (s *CupomService) ListCupons(ctx context.Context) ([]models.Cupom, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "validoDe", Value: -1}})
	cupons, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	if cupons == nil {
		cupons = []models.Cupom{}
	}
	return cupons, nil
}

// resolverAliases junta a chave informada com todos os clienteId/telefone
// distintos que aparecem nos pedidos dessa chave. Cobre clientes
// identificados de formas diferentes em pedidos antigos.
func (s *CupomService) resolverAliases(ctx context.Context, chave string) ([]string, error) {
	aliases := []string{chave}
	vistos := map[string]bool{chave: true}

	pedidos, err := s.pedidoService.Find(ctx, bson.M{
		"$or": []bson.M{
			{"clienteId": chave},
			{"clienteTelefone": chave},
		},
	}, nil)
	if err != nil {
		return nil, err
	}
	for _, p := range pedidos {
		if p.ClienteID != "" && !vistos[p.ClienteID] {
			vistos[p.ClienteID] = true
			aliases = append(aliases, p.ClienteID)
		}
		if p.ClienteTelefone != "" && !vistos[p.ClienteTelefone] {
			vistos[p.ClienteTelefone] = true
			aliases = append(aliases, p.ClienteTelefone)
		}
	}
	return aliases, nil
}

// PodeEnviar responde se ainda há quantidade para novas atribuições.
// Cupom sem contador envia sem limite.
func PodeEnviar(restante *int64) bool {
	return restante == nil || *restante > 0
}

// ConsumirRestante baixa o contador após uma atribuição criada, sem
// ficar negativo. O segundo retorno indica que o cupom esgotou.
func ConsumirRestante(restante *int64) (*int64, bool) {
	if restante == nil {
		return nil, false
	}
	novo := *restante - 1
	if novo < 0 {
		novo = 0
	}
	return &novo, novo <= 0
}

// EnviarCupom atribui o cupom às chaves de cliente informadas.
// Cada alias distinto ainda sem atribuição vira uma atribuição nova;
// quantidadeRestante cai uma vez por atribuição criada, nunca abaixo
// de zero, e o envio para quando chega a zero.
func (s *CupomService) EnviarCupom(ctx context.Context, codigoParam string, clientes []string) (*cupomdto.EnviarCupomResult, error) {
	codigo := NormalizarCodigo(codigoParam)
	resultado := &cupomdto.EnviarCupomResult{Codigo: codigo}

	cupom, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"codigo": codigo}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return resultado, nil
		}
		return nil, err
	}
	if !cupom.Ativo {
		return resultado, nil
	}

	restante := cupom.QuantidadeRestante

	for _, chave := range clientes {
		if !PodeEnviar(restante) {
			break
		}

		aliases, err := s.resolverAliases(ctx, chave)
		if err != nil {
			return nil, err
		}

		for _, alias := range aliases {
			_, err := s.cupomClienteService.FindOne(ctx, bson.M{"codigo": codigo, "clienteId": alias}, nil)
			if err == nil {
				continue
			}
			if !errors.Is(err, common.ErrNotFound) {
				return nil, err
			}

			atribuicao := models.CupomCliente{Codigo: codigo, ClienteID: alias, Usos: 0}
			if _, err := s.cupomClienteService.InsertOne(ctx, atribuicao); err != nil {
				logrus.WithFields(logrus.Fields{"codigo": codigo, "clienteId": alias}).WithError(err).Warn("EnviarCupom: atribuição rejeitada")
				continue
			}
			resultado.Enviados++

			novoRestante, esgotado := ConsumirRestante(restante)
			restante = novoRestante
			if restante != nil {
				updateData := &basesvc.UpdateData{Set: map[string]interface{}{"quantidadeRestante": *restante}}
				if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, cupom.ID, updateData); err != nil {
					return nil, err
				}
			}
			if esgotado {
				break
			}
		}
	}

	return resultado, nil
}

// CupomDisponivel responde se o cupom está utilizável para a atribuição:
// ativo, dentro da janela de validade e com usos por cliente sobrando.
func CupomDisponivel(cupom *models.Cupom, atribuicao *models.CupomCliente, agoraMs int64) bool {
	if cupom == nil || !cupom.Ativo {
		return false
	}
	if cupom.ValidoDe != nil && *cupom.ValidoDe > agoraMs {
		return false
	}
	if cupom.ValidoAte != nil && *cupom.ValidoAte < agoraMs {
		return false
	}
	if atribuicao == nil {
		return false
	}
	if cupom.UsosPorCliente != nil && atribuicao.Usos >= *cupom.UsosPorCliente {
		return false
	}
	return true
}

// BuscarParaPedido resolve cupom + atribuição para as chaves do cliente.
// Devolve nil sem erro quando o cupom não se aplica.
func (s *CupomService) BuscarParaPedido(ctx context.Context, codigoParam string, chaves []string) (*models.Cupom, *models.CupomCliente, error) {
	codigo := NormalizarCodigo(codigoParam)

	cupom, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"codigo": codigo, "ativo": true}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	for _, chave := range chaves {
		if chave == "" {
			continue
		}
		atribuicao, err := s.cupomClienteService.FindOne(ctx, bson.M{"codigo": codigo, "clienteId": chave}, nil)
		if err == nil {
			if CupomDisponivel(&cupom, &atribuicao, utility.CurrentTimeInMilli()) {
				return &cupom, &atribuicao, nil
			}
			return nil, nil, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

// IncrementarUso soma 1 ao contador de usos da atribuição
func (s *CupomService) IncrementarUso(ctx context.Context, atribuicao *models.CupomCliente) error {
	updateData := &basesvc.UpdateData{Set: map[string]interface{}{"usos": atribuicao.Usos + 1}}
	_, err := s.cupomClienteService.UpdateById(ctx, atribuicao.ID, updateData)
	return err
}

// ListCuponsDoCliente lista as atribuições da chave com os dados do cupom
// e a disponibilidade calculada, disponíveis primeiro.
func (s *CupomService) ListCuponsDoCliente(ctx context.Context, clienteKey string) ([]cupomdto.CupomClienteItem, error) {
	atribuicoes, err := s.cupomClienteService.Find(ctx, bson.M{"clienteId": clienteKey}, nil)
	if err != nil {
		return nil, err
	}

	agora := utility.CurrentTimeInMilli()
	items := make([]cupomdto.CupomClienteItem, 0, len(atribuicoes))
	for _, cc := range atribuicoes {
		cupom, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"codigo": cc.Codigo}, nil)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				// Atribuição órfã: devolve o mínimo, indisponível
				items = append(items, cupomdto.CupomClienteItem{
					ID:             "cupom-" + cc.Codigo,
					Nome:           cc.Codigo,
					Codigo:         cc.Codigo,
					UsosConsumidos: cc.Usos,
					Disponivel:     false,
				})
				continue
			}
			return nil, err
		}
		items = append(items, cupomdto.CupomClienteItem{
			ID:                 cupom.ID.Hex(),
			Nome:               cupom.Nome,
			Codigo:             cupom.Codigo,
			ValidoDe:           cupom.ValidoDe,
			ValidoAte:          cupom.ValidoAte,
			DescontoPercentual: cupom.DescontoPercentual,
			UsosPorCliente:     cupom.UsosPorCliente,
			UsosConsumidos:     cc.Usos,
			Disponivel:         CupomDisponivel(&cupom, &cc, agora),
		})
	}

	// Disponíveis primeiro, ordem estável no resto
	ordenados := make([]cupomdto.CupomClienteItem, 0, len(items))
	for _, it := range items {
		if it.Disponivel {
			ordenados = append(ordenados, it)
		}
	}
	for _, it := range items {
		if !it.Disponivel {
			ordenados = append(ordenados, it)
		}
	}
	return ordenados, nil
}
