// Package dto - inputs do domain pedido.
package dto

// PedidoItemInput é um item do carrinho na criação do pedido.
type PedidoItemInput struct {
	ProductID     string  `json:"productId"`
	Nome          string  `json:"name" validate:"required"`
	Quantidade    int64   `json:"quantity" validate:"required,min=1"`
	PrecoUnitario float64 `json:"unitPrice"`
}

// CriarPedidoInput é o body da criação de pedido.
type CriarPedidoInput struct {
	TipoEntrega       string            `json:"tipoEntrega" validate:"required,oneof=delivery retirada"`
	FormaPagamento    string            `json:"formaPagamento" validate:"required,oneof=pix cartao_entrega dinheiro carteira"`
	Itens             []PedidoItemInput `json:"itens" validate:"required,min=1,dive"`
	ObservacaoCliente string            `json:"observacaoCliente"`
	TrocoPara         *float64          `json:"trocoPara"`
	ClienteID         string            `json:"clienteId"`
	ClienteNome       string            `json:"clienteNome"`
	ClienteTelefone   string            `json:"clienteTelefone"`
	ClienteEndereco   string            `json:"clienteEndereco"`
	CupomCodigo       string            `json:"cupomCodigo"`
	UsarCarteira      bool              `json:"usarCarteira"`
	EntregadorID      string            `json:"entregadorId"`
}

// AtualizarStatusInput é o body da transição de status.
// motivoRecusa é obrigatório quando o destino é cancelado.
type AtualizarStatusInput struct {
	Status       string `json:"status" validate:"required"`
	MotivoRecusa string `json:"motivoRecusa"`
}

// AtualizarEntregadorInput é o body da atribuição de entregador.
type AtualizarEntregadorInput struct {
	EntregadorID string `json:"entregadorId" validate:"required"`
}
