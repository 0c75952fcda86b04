// Package dto - inputs e outputs do domain auth.
package dto

// LoginAdminInput é o body do login de administrador.
type LoginAdminInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginClienteInput é o body do login de cliente.
type LoginClienteInput struct {
	Telefone string `json:"telefone" validate:"required"`
	Senha    string `json:"senha" validate:"required"`
}

// RegisterClienteInput é o body do registro de cliente.
type RegisterClienteInput struct {
	Nome     string `json:"nome" validate:"required"`
	Telefone string `json:"telefone" validate:"required"`
	Senha    string `json:"senha" validate:"required,min=4"`
	Endereco string `json:"endereco"`
}

// LoginAdminResult é a resposta do login de administrador.
type LoginAdminResult struct {
	Tipo     string   `json:"tipo"`
	AdminID  string   `json:"adminId"`
	Username string   `json:"username"`
	Loja     LojaItem `json:"loja"`
	Token    string   `json:"token"`
}

// LoginClienteResult é a resposta do login e do registro de cliente.
type LoginClienteResult struct {
	Tipo      string   `json:"tipo"`
	ClienteID string   `json:"clienteId"`
	Telefone  string   `json:"telefone"`
	Nome      string   `json:"nome"`
	Endereco  string   `json:"endereco"`
	Loja      LojaItem `json:"loja"`
	Token     string   `json:"token"`
}

// LojaItem é a loja no formato público {id, nome, slug}, devolvido
// na listagem de lojas e dentro das respostas de login e registro.
type LojaItem struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Slug string `json:"slug"`
}
