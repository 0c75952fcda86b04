package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Sucesso
	StatusCreated   = 201 // Criado com sucesso
	StatusAccepted  = 202 // Requisição aceita
	StatusNoContent = 204 // Sucesso sem conteúdo de retorno

	// Client Error Codes (4xx)
	StatusBadRequest          = 400 // Requisição inválida
	StatusUnauthorized        = 401 // Não autenticado
	StatusForbidden           = 403 // Sem permissão de acesso
	StatusNotFound            = 404 // Recurso não encontrado
	StatusMethodNotAllowed    = 405 // Método HTTP não suportado
	StatusConflict            = 409 // Conflito de dados
	StatusGone                = 410 // Recurso não existe mais
	StatusPreconditionFailed  = 412 // Pré-condição não satisfeita
	StatusUnprocessableEntity = 422 // Entidade não processável
	StatusTooManyRequests     = 429 // Requisições em excesso

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Erro interno do servidor
	StatusNotImplemented      = 501 // Funcionalidade não implementada
	StatusBadGateway          = 502 // Gateway inválido
	StatusServiceUnavailable  = 503 // Serviço indisponível
	StatusGatewayTimeout      = 504 // Timeout do gateway
)

// Response Messages
const (
	// Success Messages
	MsgSuccess   = "Operação realizada com sucesso"
	MsgCreated   = "Criado com sucesso"
	MsgAccepted  = "Requisição aceita"
	MsgNoContent = "Sem conteúdo de retorno"

	// Error Messages
	MsgBadRequest         = "Requisição inválida"
	MsgUnauthorized       = "Faça login para continuar"
	MsgForbidden          = "Sem permissão de acesso"
	MsgNotFound           = "Recurso não encontrado"
	MsgMethodNotAllowed   = "Método não suportado"
	MsgConflict           = "Conflito de dados"
	MsgTooManyRequests    = "Requisições em excesso"
	MsgInternalError      = "Erro interno do sistema"
	MsgServiceUnavailable = "Serviço indisponível"

	// Token Messages
	MsgTokenMissing = "Token de autenticação ausente"
	MsgTokenInvalid = "Token inválido"
	MsgTokenExpired = "Token expirado"

	// Validation Messages
	MsgValidationError = "Dados inválidos"
	MsgDatabaseError   = "Erro de acesso ao banco de dados"
	MsgInvalidFormat   = "Formato de dados inválido"
)

// ErrorCode define um código de erro detalhado
type ErrorCode struct {
	Code        string // Código do erro (ex.: AUTH_001)
	Category    string // Categoria do erro (ex.: Authentication)
	SubCategory string // Subcategoria (ex.: Token)
	Description string // Descrição detalhada
}

// Códigos de erro organizados por categoria
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Erro interno do sistema",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Erro geral de autenticação",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Erro relacionado ao token",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Erro de credenciais de acesso",
	}

	ErrCodeAuthScope = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Scope",
		Description: "Erro de escopo de acesso do usuário",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Erro geral de validação de dados",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Erro nos dados de entrada",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Erro de formato de dados",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Erro geral de banco de dados",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Erro de conexão com o banco de dados",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Erro de consulta ao banco de dados",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Erro geral de regra de negócio",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Erro de estado de negócio",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Erro de operação de negócio",
	}
)

// Error define a estrutura de erro detalhada da aplicação
type Error struct {
	Code       ErrorCode // Código de erro detalhado
	Message    string    // Mensagem exibida ao cliente
	StatusCode int       // HTTP status code
	Details    any       // Informações adicionais do erro
}

// Error retorna a mensagem do erro
func (e *Error) Error() string {
	return e.Message
}

// Is compara com o erro alvo (suporte a errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}

	// Suporte a wrapped errors: mensagem igual à do ErrNotFound conta como match
	if target.Error() == e.Message && e.Code.Code == ErrCodeDatabaseQuery.Code && e.Message == msgNotFoundData {
		return true
	}

	return false
}

// NewError cria um erro novo com todas as informações
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

const msgNotFoundData = "Dados não encontrados"

// Custom errors
var (
	// Authentication Errors
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Credenciais inválidas", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Sessão expirada", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token inválido", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Token de autenticação ausente", StatusUnauthorized, nil)
	ErrUserNotFound       = NewError(ErrCodeAuthCredentials, "Usuário não encontrado", StatusNotFound, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dados de entrada inválidos", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Formato de dados inválido", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Informação obrigatória ausente", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound    = NewError(ErrCodeDatabaseQuery, msgNotFoundData, StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDatabaseQuery, "Dados já cadastrados", StatusConflict, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, "Erro de conexão com o banco de dados", StatusServiceUnavailable, nil)
	ErrTransaction = NewError(ErrCodeDatabaseQuery, "Erro de transação no banco de dados", StatusInternalServerError, nil)

	// Business Logic Errors
	ErrSaldoInsuficiente      = NewError(ErrCodeBusinessOperation, "Saldo insuficiente na carteira.", StatusBadRequest, nil)
	ErrClienteNaoIdentificado = NewError(ErrCodeBusinessOperation, "Cliente não identificado para pagamento com carteira.", StatusBadRequest, nil)
	ErrInvalidState           = NewError(ErrCodeBusinessState, "Estado inválido", StatusBadRequest, nil)
	ErrInvalidOperation       = NewError(ErrCodeBusinessOperation, "Operação inválida", StatusBadRequest, nil)
)

// MongoDB Error Messages
const (
	MsgMongoConnection = "Erro de conexão com o MongoDB"
	MsgMongoNetwork    = "Erro de rede ao conectar ao MongoDB"
	MsgMongoTimeout    = "Timeout na conexão com o MongoDB"
	MsgMongoAuth       = "Erro de autenticação no MongoDB"
	MsgMongoQuery      = "Erro de consulta no MongoDB"
	MsgMongoWrite      = "Erro de escrita no MongoDB"
	MsgMongoDuplicate  = "Dados duplicados no MongoDB"
	MsgMongoSystem     = "Erro de sistema no MongoDB"
)

// MongoDB Specific Errors
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, MsgMongoConnection, StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, MsgMongoNetwork, StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, MsgMongoTimeout, StatusServiceUnavailable, nil)
	ErrMongoAuth       = NewError(ErrCodeAuth, MsgMongoAuth, StatusUnauthorized, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, MsgMongoQuery, StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, MsgMongoWrite, StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, MsgMongoDuplicate, StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, MsgMongoSystem, StatusInternalServerError, nil)
)

// ConvertMongoError converte erros do driver MongoDB em erros da aplicação
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound passa direto, nunca é convertido
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if appErr, ok := err.(*Error); ok {
		if appErr.Code.Code == ErrCodeDatabaseQuery.Code && appErr.Message == msgNotFoundData {
			return err
		}
	}
	if err.Error() == msgNotFoundData {
		return ErrNotFound
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return ErrMongoAuth
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
