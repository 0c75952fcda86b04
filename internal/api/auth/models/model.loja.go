// Package models - models do domain auth (loja, admin, cliente).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loja define uma loja atendida pelo sistema.
// Slug é o identificador público usado no frontend ("pc-bebidas").
type Loja struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Slug      string             `json:"slug" bson:"slug" index:"unique"`
	Nome      string             `json:"nome" bson:"nome"`
	IsSystem  bool               `json:"isSystem,omitempty" bson:"isSystem,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
