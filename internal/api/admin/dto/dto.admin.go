// Package dto - projeções dos agregados administrativos.
package dto

// ProdutoMaisVendido é a soma de quantidades vendidas por nome de item
type ProdutoMaisVendido struct {
	Nome       string `json:"nome"`
	Quantidade int64  `json:"quantidade"`
}

// PedidoEmAndamento é o resumo de um pedido que ainda não terminou
type PedidoEmAndamento struct {
	ID      string  `json:"id"`
	Cliente string  `json:"cliente"`
	Valor   float64 `json:"valor"`
	Status  string  `json:"status"`
}

// EstoqueBaixo aponta um produto ativo com estoque no limite
type EstoqueBaixo struct {
	Nome    string `json:"nome"`
	Estoque int64  `json:"estoque"`
}

// ClienteRecorrente é a contagem de pedidos por cliente
type ClienteRecorrente struct {
	Nome    string `json:"nome"`
	Pedidos int64  `json:"pedidos"`
}

// DashboardResult junta os números do painel do admin
type DashboardResult struct {
	VendasHoje           float64              `json:"vendasHoje"`
	TicketMedio          float64              `json:"ticketMedio"`
	PedidosHoje          int64                `json:"pedidosHoje"`
	ClientesHoje         int64                `json:"clientesHoje"`
	ProdutosMaisVendidos []ProdutoMaisVendido `json:"produtosMaisVendidos"`
	PedidosEmAndamento   []PedidoEmAndamento  `json:"pedidosEmAndamento"`
	EstoqueBaixo         []EstoqueBaixo       `json:"estoqueBaixo"`
	ClientesRecorrentes  []ClienteRecorrente  `json:"clientesRecorrentes"`
}

// RelatorioDia é um dia (UTC) do relatório dos últimos 30 dias
type RelatorioDia struct {
	Dia         string  `json:"dia"`
	Vendas      float64 `json:"vendas"`
	Pedidos     int64   `json:"pedidos"`
	TicketMedio float64 `json:"ticketMedio"`
}

// ClienteLoja é a visão agregada de um cliente a partir dos pedidos dele
type ClienteLoja struct {
	ID             string  `json:"id"`
	Nome           string  `json:"nome"`
	Telefone       string  `json:"telefone,omitempty"`
	Endereco       string  `json:"endereco,omitempty"`
	UltimoPedidoEm int64   `json:"ultimoPedidoEm"`
	TotalPedidos   int64   `json:"totalPedidos"`
	ValorTotal     float64 `json:"valorTotal"`
	SaldoCarteira  float64 `json:"saldoCarteira"`
}

// ClienteUpdateInput são os ajustes de cadastro feitos pelo admin.
// Campo ausente mantém o valor atual.
type ClienteUpdateInput struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
}

// CarteiraCreditoInput é o valor a creditar na carteira do cliente
type CarteiraCreditoInput struct {
	Valor float64 `json:"valor"`
}

// CarteiraCreditoResult devolve o saldo após o crédito
type CarteiraCreditoResult struct {
	ID            string  `json:"id"`
	SaldoCarteira float64 `json:"saldoCarteira"`
}

// ClientePedidoResumo é a projeção de um pedido na listagem do cliente
type ClientePedidoResumo struct {
	ID        string  `json:"id"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"createdAt"`
}
