// Package models - models do domain cupom.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cupom define um cupom de desconto percentual.
// O código é normalizado para maiúsculas e é único.
// QuantidadeRestante é decrementada no envio (atribuição), não no uso,
// e nunca fica negativa.
type Cupom struct {
	_Relationships     struct{}           `relationship:"collection:cupom_clientes,field:codigo,message:Não é possível remover o cupom: existem %d atribuição(ões) de clientes para ele."`
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nome               string             `json:"nome" bson:"nome"`
	Codigo             string             `json:"codigo" bson:"codigo" index:"unique"`
	ValidoDe           *int64             `json:"validoDe,omitempty" bson:"validoDe,omitempty" index:"single;order:-1"`
	ValidoAte          *int64             `json:"validoAte,omitempty" bson:"validoAte,omitempty"`
	UsosPorCliente     *int64             `json:"usosPorCliente,omitempty" bson:"usosPorCliente,omitempty"`
	QuantidadeTotal    *int64             `json:"quantidadeTotal,omitempty" bson:"quantidadeTotal,omitempty"`
	QuantidadeRestante *int64             `json:"quantidadeRestante,omitempty" bson:"quantidadeRestante,omitempty"`
	Ativo              bool               `json:"ativo" bson:"ativo" default:"true"`
	DescontoPercentual *float64           `json:"descontoPercentual,omitempty" bson:"descontoPercentual,omitempty"`
	CreatedAt          int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64              `json:"updatedAt" bson:"updatedAt"`
}

// CupomCliente é a atribuição de um cupom para uma chave de cliente.
// Usos é incrementado quando o cupom entra num pedido.
type CupomCliente struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Codigo    string             `json:"codigo" bson:"codigo" index:"compound:codigo_cliente_unique"`
	ClienteID string             `json:"clienteId" bson:"clienteId" index:"compound:codigo_cliente_unique"`
	Usos      int64              `json:"usos" bson:"usos"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
