package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cliente define um cliente registrado.
// O telefone é único: o registro rejeita duplicados.
// A chave canônica do cliente no restante do sistema é o hex do ID;
// o telefone fica como alias histórico dos pedidos antigos.
type Cliente struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nome      string             `json:"nome" bson:"nome"`
	Telefone  string             `json:"telefone" bson:"telefone" index:"unique"`
	SenhaHash string             `json:"-" bson:"senhaHash"`
	Endereco  string             `json:"endereco,omitempty" bson:"endereco,omitempty"`
	LojaSlug  string             `json:"loja" bson:"lojaSlug"`
	Token     string             `json:"-" bson:"token,omitempty"`
	IsSystem  bool               `json:"isSystem,omitempty" bson:"isSystem,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
