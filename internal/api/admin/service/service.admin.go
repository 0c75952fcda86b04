// Package adminsvc - agregados administrativos sobre pedidos, produtos,
// carteiras e cupons.
package adminsvc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	admindto "github.com/Bryanhudson603/extraplusdelivery/internal/api/admin/dto"
	authsvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/service"
	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	carteirasvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/carteira/service"
	catalogosvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/service"
	pedidomodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/models"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// EstoqueBaixoLimite é o teto de estoque para o alerta do dashboard
const EstoqueBaixoLimite = 5

// RelatorioJanelaDias é a janela do relatório diário
const RelatorioJanelaDias = 30

// AdminService calcula os agregados do painel administrativo
type AdminService struct {
	pedidoService   *basesvc.BaseServiceMongoImpl[pedidomodels.Pedido]
	produtoService  *catalogosvc.ProdutoService
	carteiraService *carteirasvc.CarteiraService
	overrideService *authsvc.ClienteOverrideService
}

// NewAdminService cria um AdminService novo
func NewAdminService() (*AdminService, error) {
	pedidoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Pedidos)
	if !exist {
		return nil, fmt.Errorf("failed to get pedidos collection: %v", common.ErrNotFound)
	}
	produtoService, err := catalogosvc.NewProdutoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create produto service: %v", err)
	}
	carteiraService, err := carteirasvc.NewCarteiraService()
	if err != nil {
		return nil, fmt.Errorf("failed to create carteira service: %v", err)
	}
	overrideService, err := authsvc.NewClienteOverrideService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cliente override service: %v", err)
	}
	return &AdminService{
		pedidoService:   basesvc.NewBaseServiceMongo[pedidomodels.Pedido](pedidoCollection),
		produtoService:  produtoService,
		carteiraService: carteiraService,
		overrideService: overrideService,
	}, nil
}

// listPedidosRecentesPrimeiro devolve todos os pedidos, do mais novo ao
// mais antigo. Os agregados iteram nessa ordem.
func (s *AdminService) listPedidosRecentesPrimeiro(ctx context.Context) ([]pedidomodels.Pedido, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.pedidoService.Find(ctx, bson.M{}, opts)
}

func nomeCliente(p *pedidomodels.Pedido) string {
	if p.ClienteNome != "" {
		return p.ClienteNome
	}
	if p.ClienteTelefone != "" {
		return p.ClienteTelefone
	}
	return "Cliente"
}

func chaveCliente(p *pedidomodels.Pedido) string {
	if p.ClienteID != "" {
		return p.ClienteID
	}
	return p.ClienteTelefone
}

// Dashboard monta os números do painel do admin
func (s *AdminService) Dashboard(ctx context.Context) (*admindto.DashboardResult, error) {
	pedidos, err := s.listPedidosRecentesPrimeiro(ctx)
	if err != nil {
		return nil, err
	}

	var vendas float64
	var pedidosCount int64
	pedidosEmAndamento := []admindto.PedidoEmAndamento{}
	quantidadePorItem := map[string]int64{}
	ordemItens := []string{}
	recorrentePorChave := map[string]*admindto.ClienteRecorrente{}
	ordemChaves := []string{}

	for i := range pedidos {
		p := &pedidos[i]
		if p.Status == pedidomodels.StatusCancelado {
			continue
		}
		pedidosCount++
		if p.Status == pedidomodels.StatusFinalizado {
			vendas += p.Total
		}
		if p.Status != pedidomodels.StatusFinalizado {
			pedidosEmAndamento = append(pedidosEmAndamento, admindto.PedidoEmAndamento{
				ID:      p.ID.Hex(),
				Cliente: nomeCliente(p),
				Valor:   p.Total,
				Status:  p.Status,
			})
		}

		for _, item := range p.Items {
			if _, ok := quantidadePorItem[item.Nome]; !ok {
				ordemItens = append(ordemItens, item.Nome)
			}
			quantidadePorItem[item.Nome] += item.Quantidade
		}

		chave := chaveCliente(p)
		if chave == "" {
			continue
		}
		if _, ok := recorrentePorChave[chave]; !ok {
			recorrentePorChave[chave] = &admindto.ClienteRecorrente{Nome: nomeCliente(p)}
			ordemChaves = append(ordemChaves, chave)
		}
		recorrentePorChave[chave].Pedidos++
	}

	produtosMaisVendidos := make([]admindto.ProdutoMaisVendido, 0, len(ordemItens))
	for _, nome := range ordemItens {
		produtosMaisVendidos = append(produtosMaisVendidos, admindto.ProdutoMaisVendido{
			Nome:       nome,
			Quantidade: quantidadePorItem[nome],
		})
	}
	sort.SliceStable(produtosMaisVendidos, func(i, j int) bool {
		return produtosMaisVendidos[i].Quantidade > produtosMaisVendidos[j].Quantidade
	})

	clientesRecorrentes := make([]admindto.ClienteRecorrente, 0, len(ordemChaves))
	for _, chave := range ordemChaves {
		clientesRecorrentes = append(clientesRecorrentes, *recorrentePorChave[chave])
	}
	sort.SliceStable(clientesRecorrentes, func(i, j int) bool {
		return clientesRecorrentes[i].Pedidos > clientesRecorrentes[j].Pedidos
	})

	produtos, err := s.produtoService.ListAdmin(ctx)
	if err != nil {
		return nil, err
	}
	estoqueBaixo := []admindto.EstoqueBaixo{}
	for _, produto := range produtos {
		if produto.Ativo && produto.Estoque <= EstoqueBaixoLimite {
			estoqueBaixo = append(estoqueBaixo, admindto.EstoqueBaixo{
				Nome:    produto.Nome,
				Estoque: produto.Estoque,
			})
		}
	}

	ticketMedio := 0.0
	if pedidosCount > 0 {
		ticketMedio = vendas / float64(pedidosCount)
	}

	return &admindto.DashboardResult{
		VendasHoje:           vendas,
		TicketMedio:          ticketMedio,
		PedidosHoje:          pedidosCount,
		ClientesHoje:         int64(len(clientesRecorrentes)),
		ProdutosMaisVendidos: produtosMaisVendidos,
		PedidosEmAndamento:   pedidosEmAndamento,
		EstoqueBaixo:         estoqueBaixo,
		ClientesRecorrentes:  clientesRecorrentes,
	}, nil
}

// RelatorioDias agrupa os últimos 30 dias por dia UTC: pedidos não
// cancelados, vendas dos finalizados (arredondamento a cada soma) e
// ticket médio do dia. Ordenado do dia mais antigo ao mais novo.
func (s *AdminService) RelatorioDias(ctx context.Context) ([]admindto.RelatorioDia, error) {
	agoraMs := utility.CurrentTimeInMilli()
	corteMs := agoraMs - int64(RelatorioJanelaDias)*24*60*60*1000

	pedidos, err := s.pedidoService.Find(ctx, bson.M{"createdAt": bson.M{"$gte": corteMs}}, nil)
	if err != nil {
		return nil, err
	}

	type acumuladoDia struct {
		vendas  float64
		pedidos int64
	}
	porDia := map[string]*acumuladoDia{}
	for i := range pedidos {
		p := &pedidos[i]
		dia := time.UnixMilli(p.CreatedAt).UTC().Format("2006-01-02")
		acumulado, ok := porDia[dia]
		if !ok {
			acumulado = &acumuladoDia{}
			porDia[dia] = acumulado
		}
		if p.Status != pedidomodels.StatusCancelado {
			acumulado.pedidos++
		}
		if p.Status == pedidomodels.StatusFinalizado {
			acumulado.vendas = utility.Round2(acumulado.vendas + p.Total)
		}
	}

	dias := make([]string, 0, len(porDia))
	for dia := range porDia {
		dias = append(dias, dia)
	}
	sort.Strings(dias)

	lista := make([]admindto.RelatorioDia, 0, len(dias))
	for _, dia := range dias {
		acumulado := porDia[dia]
		ticketMedio := 0.0
		if acumulado.pedidos > 0 {
			ticketMedio = utility.Round2(acumulado.vendas / float64(acumulado.pedidos))
		}
		lista = append(lista, admindto.RelatorioDia{
			Dia:         dia,
			Vendas:      acumulado.vendas,
			Pedidos:     acumulado.pedidos,
			TicketMedio: ticketMedio,
		})
	}
	return lista, nil
}

// ListClientes agrega os pedidos por chave de cliente. O override do
// admin ganha de nome/telefone/endereço do pedido; o saldo vem da
// carteira da chave. Ordenado pelo último pedido, mais recente primeiro.
func (s *AdminService) ListClientes(ctx context.Context) ([]admindto.ClienteLoja, error) {
	pedidos, err := s.listPedidosRecentesPrimeiro(ctx)
	if err != nil {
		return nil, err
	}

	overrides, err := s.overrideService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	overridePorChave := map[string]int{}
	for i := range overrides {
		overridePorChave[overrides[i].ClienteKey] = i
	}

	carteiras, err := s.carteiraService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	saldoPorChave := map[string]float64{}
	for i := range carteiras {
		saldoPorChave[carteiras[i].ClienteKey] = carteiras[i].Saldo
	}

	clientePorChave := map[string]*admindto.ClienteLoja{}
	ordemChaves := []string{}
	for i := range pedidos {
		p := &pedidos[i]
		chave := chaveCliente(p)
		if chave == "" {
			continue
		}
		existente, ok := clientePorChave[chave]
		if !ok {
			cliente := &admindto.ClienteLoja{
				ID:             chave,
				Nome:           nomeCliente(p),
				Telefone:       p.ClienteTelefone,
				Endereco:       p.ClienteEndereco,
				UltimoPedidoEm: p.CreatedAt,
				TotalPedidos:   1,
				ValorTotal:     p.Total,
				SaldoCarteira:  saldoPorChave[chave],
			}
			if idx, tem := overridePorChave[chave]; tem {
				override := &overrides[idx]
				if override.Nome != "" {
					cliente.Nome = override.Nome
				}
				if override.Telefone != "" {
					cliente.Telefone = override.Telefone
				}
				if override.Endereco != "" {
					cliente.Endereco = override.Endereco
				}
			}
			clientePorChave[chave] = cliente
			ordemChaves = append(ordemChaves, chave)
			continue
		}
		existente.TotalPedidos++
		existente.ValorTotal += p.Total
		if p.CreatedAt > existente.UltimoPedidoEm {
			existente.UltimoPedidoEm = p.CreatedAt
		}
	}

	lista := make([]admindto.ClienteLoja, 0, len(ordemChaves))
	for _, chave := range ordemChaves {
		lista = append(lista, *clientePorChave[chave])
	}
	sort.SliceStable(lista, func(i, j int) bool {
		return lista[i].UltimoPedidoEm > lista[j].UltimoPedidoEm
	})
	return lista, nil
}

// ObterCliente busca a chave na agregação; sem pedidos, sintetiza a
// partir do override e da carteira. Sem nada, devolve nil.
func (s *AdminService) ObterCliente(ctx context.Context, clienteKey string) (*admindto.ClienteLoja, error) {
	lista, err := s.ListClientes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range lista {
		if lista[i].ID == clienteKey {
			return &lista[i], nil
		}
	}

	override, errOverride := s.overrideService.FindByClienteKey(ctx, clienteKey)
	temOverride := errOverride == nil
	if errOverride != nil && !errors.Is(errOverride, common.ErrNotFound) {
		return nil, errOverride
	}

	carteira, errCarteira := s.carteiraService.FindByKey(ctx, clienteKey)
	temCarteira := errCarteira == nil
	if errCarteira != nil && !errors.Is(errCarteira, common.ErrNotFound) {
		return nil, errCarteira
	}

	if !temOverride && !temCarteira {
		return nil, nil
	}

	cliente := &admindto.ClienteLoja{
		ID:             clienteKey,
		Nome:           "Cliente",
		UltimoPedidoEm: utility.CurrentTimeInMilli(),
	}
	if temOverride {
		if override.Nome != "" {
			cliente.Nome = override.Nome
		}
		cliente.Telefone = override.Telefone
		cliente.Endereco = override.Endereco
	}
	if temCarteira {
		cliente.SaldoCarteira = carteira.Saldo
	}
	return cliente, nil
}

// AtualizarCliente grava o override da chave e devolve a visão agregada
func (s *AdminService) AtualizarCliente(ctx context.Context, clienteKey string, input *admindto.ClienteUpdateInput) (*admindto.ClienteLoja, error) {
	nome := ""
	if input.Nome != nil {
		nome = *input.Nome
	}
	telefone := ""
	if input.Telefone != nil {
		telefone = *input.Telefone
	}
	endereco := ""
	if input.Endereco != nil {
		endereco = *input.Endereco
	}
	if _, err := s.overrideService.UpsertByClienteKey(ctx, clienteKey, nome, telefone, endereco); err != nil {
		return nil, err
	}
	return s.ObterCliente(ctx, clienteKey)
}

// CreditarCarteira soma valor ao saldo da chave e devolve o saldo novo.
// Valor não positivo é no-op e devolve o saldo atual.
func (s *AdminService) CreditarCarteira(ctx context.Context, clienteKey string, valor float64) (*admindto.CarteiraCreditoResult, error) {
	saldo, err := s.carteiraService.Creditar(ctx, clienteKey, valor)
	if err != nil {
		return nil, err
	}
	return &admindto.CarteiraCreditoResult{ID: clienteKey, SaldoCarteira: saldo}, nil
}

// ListPedidosCliente lista os pedidos da chave (id canônico ou telefone
// dos pedidos antigos), do mais novo ao mais antigo.
func (s *AdminService) ListPedidosCliente(ctx context.Context, clienteKey string) ([]admindto.ClientePedidoResumo, error) {
	filter := bson.M{"$or": []bson.M{
		{"clienteId": clienteKey},
		{"clienteTelefone": clienteKey},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	pedidos, err := s.pedidoService.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	lista := make([]admindto.ClientePedidoResumo, 0, len(pedidos))
	for i := range pedidos {
		p := &pedidos[i]
		lista = append(lista, admindto.ClientePedidoResumo{
			ID:        p.ID.Hex(),
			Total:     p.Total,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}
	return lista, nil
}
