package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin define uma conta de administrador da loja.
// Token guarda o JWT mais recente, atualizado a cada login.
type Admin struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username" index:"unique"`
	SenhaHash string             `json:"-" bson:"senhaHash"`
	LojaSlug  string             `json:"loja" bson:"lojaSlug"`
	Token     string             `json:"-" bson:"token,omitempty"`
	IsSystem  bool               `json:"isSystem,omitempty" bson:"isSystem,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
