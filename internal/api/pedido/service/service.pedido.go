package pedidosvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	carteirasvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/carteira/service"
	catalogosvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/service"
	cupomsvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/service"
	entregadorsvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/entregador/service"
	pedidodto "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/dto"
	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/models"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// ErrPedidoNaoEncontrado responde 404 nas rotas que recebem id de pedido.
var ErrPedidoNaoEncontrado = common.NewError(common.ErrCodeBusiness, "Pedido não encontrado", common.StatusNotFound, nil)

// ErrEntregadorNaoEncontrado responde 400 na atribuição de entregador.
var ErrEntregadorNaoEncontrado = common.NewError(common.ErrCodeBusiness, "Entregador não encontrado", common.StatusBadRequest, nil)

// PedidoService é o service dos pedidos.
// A criação roda numa transação do Mongo: cupom, carteira, estoque e o
// insert do pedido entram ou saem juntos.
type PedidoService struct {
	*basesvc.BaseServiceMongoImpl[models.Pedido]
	produtoService    *catalogosvc.ProdutoService
	carteiraService   *carteirasvc.CarteiraService
	cupomService      *cupomsvc.CupomService
	entregadorService *entregadorsvc.EntregadorService
}

// NewPedidoService cria um PedidoService novo
func NewPedidoService() (*PedidoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Pedidos)
	if !exist {
		return nil, fmt.Errorf("failed to get pedidos collection: %v", common.ErrNotFound)
	}
	produtoService, err := catalogosvc.NewProdutoService()
	if err != nil {
		return nil, err
	}
	carteiraService, err := carteirasvc.NewCarteiraService()
	if err != nil {
		return nil, err
	}
	cupomService, err := cupomsvc.NewCupomService()
	if err != nil {
		return nil, err
	}
	entregadorService, err := entregadorsvc.NewEntregadorService()
	if err != nil {
		return nil, err
	}

	return &PedidoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Pedido](collection),
		produtoService:       produtoService,
		carteiraService:      carteiraService,
		cupomService:         cupomService,
		entregadorService:    entregadorService,
	}, nil
}

// ListPedidos lista os pedidos do mais recente para o mais antigo
func (s *PedidoService) ListPedidos(ctx context.Context) ([]models.Pedido, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	pedidos, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	if pedidos == nil {
		pedidos = []models.Pedido{}
	}
	return pedidos, nil
}

// chaveCarteira resolve a chave canônica do cliente no pedido:
// o id do cliente registrado, senão o telefone.
func chaveCarteira(input *pedidodto.CriarPedidoInput) string {
	if input.ClienteID != "" {
		return input.ClienteID
	}
	return input.ClienteTelefone
}

// ValidarPagamentoCarteira exige um cliente identificado (id ou
// telefone) no pagamento integral com carteira.
func ValidarPagamentoCarteira(formaPagamento, chave string) error {
	if formaPagamento == "carteira" && chave == "" {
		return common.ErrClienteNaoIdentificado
	}
	return nil
}

// CriarPedido converte o carrinho num pedido persistido.
// Desconto de cupom, débito de carteira, troco, cashback e baixa de
// estoque acontecem na mesma transação do insert.
func (s *PedidoService) CriarPedido(ctx context.Context, input *pedidodto.CriarPedidoInput) (*models.Pedido, error) {
	chave := chaveCarteira(input)

	if err := ValidarPagamentoCarteira(input.FormaPagamento, chave); err != nil {
		return nil, err
	}

	session, err := global.MongoDB_Session.StartSession()
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	resultado, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return s.criarPedidoTx(sc, input, chave)
	})
	if err != nil {
		return nil, err
	}

	pedido := resultado.(models.Pedido)
	return &pedido, nil
}

// criarPedidoTx é o corpo transacional da criação do pedido.
func (s *PedidoService) criarPedidoTx(ctx context.Context, input *pedidodto.CriarPedidoInput, chave string) (interface{}, error) {
	totalBruto := CalcularTotalBruto(input.Itens)

	// Cupom: ativo, dentro da janela, atribuído ao cliente e com usos
	// sobrando. Quando aplica, o uso da atribuição sobe na hora.
	var desconto float64
	if input.CupomCodigo != "" {
		cupom, atribuicao, err := s.cupomService.BuscarParaPedido(ctx, input.CupomCodigo, []string{input.ClienteID, input.ClienteTelefone})
		if err != nil {
			return nil, err
		}
		if cupom != nil && cupom.DescontoPercentual != nil {
			desconto = CalcularDesconto(totalBruto, *cupom.DescontoPercentual)
			if err := s.cupomService.IncrementarUso(ctx, atribuicao); err != nil {
				return nil, err
			}
		}
	}

	total := AplicarDesconto(totalBruto, desconto)

	// Carteira: pagamento integral exige saldo para o total; o flag
	// usarCarteira abate min(saldo, total) como pagamento parcial.
	var usadoCarteira float64
	switch {
	case input.FormaPagamento == "carteira":
		if _, err := s.carteiraService.Debitar(ctx, chave, total); err != nil {
			return nil, err
		}
		usadoCarteira = total
	case input.UsarCarteira && chave != "":
		aplicado, err := s.carteiraService.DebitarParcial(ctx, chave, total)
		if err != nil {
			return nil, err
		}
		usadoCarteira = aplicado
	}

	restante := CalcularRestante(total, usadoCarteira)
	troco := CalcularTroco(input.FormaPagamento, input.TrocoPara, restante)

	// Entregador informado no checkout: só resolve o nome, sem validar
	var entregadorNome string
	if input.EntregadorID != "" && primitive.IsValidObjectID(input.EntregadorID) {
		if entregador, err := s.entregadorService.FindOneById(ctx, utility.String2ObjectID(input.EntregadorID)); err == nil {
			entregadorNome = entregador.Nome
		}
	}

	status := models.StatusRecebido
	if input.FormaPagamento == "pix" {
		status = models.StatusAguardandoPagamento
	}

	items := make([]models.PedidoItem, 0, len(input.Itens))
	for _, item := range input.Itens {
		items = append(items, models.PedidoItem{Nome: item.Nome, Quantidade: item.Quantidade})
	}

	pedido := models.Pedido{
		ID:                primitive.NewObjectID(),
		Status:            status,
		TipoEntrega:       input.TipoEntrega,
		FormaPagamento:    input.FormaPagamento,
		Total:             total,
		Items:             items,
		TrocoPara:         input.TrocoPara,
		Troco:             troco,
		ClienteID:         input.ClienteID,
		ClienteNome:       input.ClienteNome,
		ClienteTelefone:   input.ClienteTelefone,
		ClienteEndereco:   input.ClienteEndereco,
		EntregadorID:      input.EntregadorID,
		EntregadorNome:    entregadorNome,
		ObservacaoCliente: input.ObservacaoCliente,
	}
	if input.FormaPagamento == "pix" {
		pedido.Pix = &models.PixInfo{QrCodePayload: GerarPixPayload(pedido.ID.Hex(), total)}
	}

	criado, err := s.BaseServiceMongoImpl.InsertOne(ctx, pedido)
	if err != nil {
		return nil, err
	}

	// Cashback de 1% do total na carteira da chave do cliente
	if chave != "" {
		cashback := CalcularCashback(total)
		if ValorCreditavel(cashback) {
			if _, err := s.carteiraService.Creditar(ctx, chave, cashback); err != nil {
				return nil, err
			}
		}
	}

	// Baixa de estoque por item, sem ficar negativo.
	// Produto desconhecido é ignorado em silêncio.
	for _, item := range input.Itens {
		if item.ProductID == "" || !primitive.IsValidObjectID(item.ProductID) {
			continue
		}
		produtoID := utility.String2ObjectID(item.ProductID)
		produto, err := s.produtoService.FindOneById(ctx, produtoID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				continue
			}
			return nil, err
		}
		novoEstoque := ClampEstoque(produto.Estoque, item.Quantidade)
		updateData := &basesvc.UpdateData{Set: map[string]interface{}{"stock": novoEstoque}}
		if _, err := s.produtoService.UpdateById(ctx, produtoID, updateData); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"pedido_id":      criado.ID.Hex(),
		"total":          criado.Total,
		"formaPagamento": criado.FormaPagamento,
	}).Info("Pedido criado")

	return criado, nil
}

// AtualizarStatus aplica uma transição de status do pedido.
// Transições fora da tabela respondem 422; cancelar exige motivoRecusa,
// e qualquer transição que não seja cancelamento limpa o motivo.
func (s *PedidoService) AtualizarStatus(ctx context.Context, id primitive.ObjectID, input *pedidodto.AtualizarStatusInput) (models.Pedido, error) {
	pedido, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.Pedido{}, ErrPedidoNaoEncontrado
		}
		return models.Pedido{}, err
	}

	if !models.StatusConhecido(input.Status) {
		return models.Pedido{}, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Status desconhecido: '%s'", input.Status),
			common.StatusUnprocessableEntity,
			nil,
		)
	}
	if !models.TransicaoValida(pedido.Status, input.Status) {
		return models.Pedido{}, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Transição de status inválida: de '%s' para '%s'", pedido.Status, input.Status),
			common.StatusUnprocessableEntity,
			nil,
		)
	}

	updateData := &basesvc.UpdateData{Set: map[string]interface{}{"status": input.Status}}
	if input.Status == models.StatusCancelado {
		if input.MotivoRecusa == "" {
			return models.Pedido{}, common.NewError(
				common.ErrCodeBusinessState,
				"Cancelamento exige um motivo (motivoRecusa)",
				common.StatusUnprocessableEntity,
				nil,
			)
		}
		updateData.Set["motivoRecusa"] = input.MotivoRecusa
	} else {
		updateData.Unset = map[string]interface{}{"motivoRecusa": ""}
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

// AtualizarEntregador grava id e nome do entregador no pedido.
// Pedido inexistente responde 404; entregador inexistente, 400.
func (s *PedidoService) AtualizarEntregador(ctx context.Context, id primitive.ObjectID, entregadorID string) (models.Pedido, error) {
	_, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.Pedido{}, ErrPedidoNaoEncontrado
		}
		return models.Pedido{}, err
	}

	if !primitive.IsValidObjectID(entregadorID) {
		return models.Pedido{}, ErrEntregadorNaoEncontrado
	}
	entregador, err := s.entregadorService.FindOneById(ctx, utility.String2ObjectID(entregadorID))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.Pedido{}, ErrEntregadorNaoEncontrado
		}
		return models.Pedido{}, err
	}

	updateData := &basesvc.UpdateData{Set: map[string]interface{}{
		"entregadorId":   entregador.ID.Hex(),
		"entregadorNome": entregador.Nome,
	}}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}
