// Package models - models do domain pedido.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status possíveis de um pedido. As transições válidas ficam na tabela
// TransicoesValidas; o endpoint de status rejeita qualquer outra.
const (
	StatusAguardandoPagamento = "aguardando_pagamento"
	StatusRecebido            = "recebido"
	StatusConfirmado          = "confirmado"
	StatusPreparando          = "preparando"
	StatusSaiuParaEntrega     = "saiu_para_entrega"
	StatusFinalizado          = "finalizado"
	StatusCancelado           = "cancelado"
)

// TransicoesValidas é a tabela de transições de status.
// cancelado é alcançável de qualquer estado não terminal.
var TransicoesValidas = map[string][]string{
	StatusAguardandoPagamento: {StatusRecebido, StatusCancelado},
	StatusRecebido:            {StatusConfirmado, StatusCancelado},
	StatusConfirmado:          {StatusPreparando, StatusCancelado},
	StatusPreparando:          {StatusSaiuParaEntrega, StatusCancelado},
	StatusSaiuParaEntrega:     {StatusFinalizado, StatusCancelado},
	StatusFinalizado:          {},
	StatusCancelado:           {},
}

// TransicaoValida responde se a mudança de atual para destino está na tabela.
func TransicaoValida(atual, destino string) bool {
	for _, permitido := range TransicoesValidas[atual] {
		if permitido == destino {
			return true
		}
	}
	return false
}

// StatusConhecido responde se o status existe na tabela.
func StatusConhecido(status string) bool {
	_, ok := TransicoesValidas[status]
	return ok
}

// PedidoItem é um item do pedido. Só nome e quantidade ficam gravados,
// sem referência ao produto.
type PedidoItem struct {
	Nome       string `json:"name" bson:"name"`
	Quantidade int64  `json:"quantity" bson:"quantity"`
}

// PixInfo carrega o payload do QR Code de pagamento PIX.
type PixInfo struct {
	QrCodePayload string `json:"qrCodePayload" bson:"qrCodePayload"`
}

// Pedido define um pedido da loja.
// A chave do cliente (ClienteID) é o hex do id do cliente registrado;
// pedidos antigos podem carregar só o telefone.
type Pedido struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Status            string             `json:"status" bson:"status" index:"single"`
	TipoEntrega       string             `json:"tipoEntrega" bson:"tipoEntrega"`
	FormaPagamento    string             `json:"formaPagamento" bson:"formaPagamento"`
	Total             float64            `json:"total" bson:"total"`
	Items             []PedidoItem       `json:"items" bson:"items"`
	TrocoPara         *float64           `json:"trocoPara,omitempty" bson:"trocoPara,omitempty"`
	Troco             *float64           `json:"troco,omitempty" bson:"troco,omitempty"`
	Pix               *PixInfo           `json:"pix,omitempty" bson:"pix,omitempty"`
	MotivoRecusa      string             `json:"motivoRecusa,omitempty" bson:"motivoRecusa,omitempty"`
	ClienteID         string             `json:"clienteId,omitempty" bson:"clienteId,omitempty" index:"single"`
	ClienteNome       string             `json:"clienteNome,omitempty" bson:"clienteNome,omitempty"`
	ClienteTelefone   string             `json:"clienteTelefone,omitempty" bson:"clienteTelefone,omitempty" index:"single"`
	ClienteEndereco   string             `json:"clienteEndereco,omitempty" bson:"clienteEndereco,omitempty"`
	EntregadorID      string             `json:"entregadorId,omitempty" bson:"entregadorId,omitempty" index:"single"`
	EntregadorNome    string             `json:"entregadorNome,omitempty" bson:"entregadorNome,omitempty"`
	ObservacaoCliente string             `json:"observacaoCliente,omitempty" bson:"observacaoCliente,omitempty"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt" index:"single;order:-1"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}
