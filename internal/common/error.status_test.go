package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewError_Campos(t *testing.T) {
	err := NewError(ErrCodeBusinessState, "Transição inválida", StatusUnprocessableEntity, nil)

	appErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("NewError deveria devolver *Error, veio %T", err)
	}
	if appErr.Code.Code != "BIZ_001" {
		t.Errorf("Code = %q, esperado BIZ_001", appErr.Code.Code)
	}
	if appErr.StatusCode != StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d, esperado %d", appErr.StatusCode, StatusUnprocessableEntity)
	}
	if appErr.Error() != "Transição inválida" {
		t.Errorf("Error() = %q", appErr.Error())
	}
}

func TestErrorIs_Sentinelas(t *testing.T) {
	if !errors.Is(ErrNotFound, ErrNotFound) {
		t.Error("errors.Is(ErrNotFound, ErrNotFound) deveria ser true")
	}
	if errors.Is(ErrNotFound, ErrDuplicate) {
		t.Error("ErrNotFound não deveria casar com ErrDuplicate")
	}

	embrulhado := fmt.Errorf("consulta de cliente: %w", ErrNotFound)
	if !errors.Is(embrulhado, ErrNotFound) {
		t.Error("sentinela embrulhado com %w deveria continuar casando")
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, esperado nil", got)
	}
}

func TestConvertMongoError_NotFoundPassaDireto(t *testing.T) {
	got := ConvertMongoError(ErrNotFound)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound deveria atravessar a conversão, veio %v", got)
	}
}

func TestConvertMongoError_CommandError(t *testing.T) {
	casos := []struct {
		codigo   int32
		esperado error
	}{
		{150, ErrMongoConnection},
		{250, ErrMongoAuth},
		{350, ErrMongoQuery},
		{450, ErrMongoWrite},
		{550, ErrMongoSystem},
	}
	for _, caso := range casos {
		got := ConvertMongoError(mongo.CommandError{Code: caso.codigo, Message: "x"})
		if !errors.Is(got, caso.esperado) {
			t.Errorf("CommandError código %d convertido para %v, esperado %v", caso.codigo, got, caso.esperado)
		}
	}
}

func TestConvertMongoError_ErroGenerico(t *testing.T) {
	got := ConvertMongoError(errors.New("algo falhou"))

	appErr, ok := got.(*Error)
	if !ok {
		t.Fatalf("erro genérico deveria virar *Error, veio %T", got)
	}
	if appErr.Code.Code != ErrCodeDatabase.Code {
		t.Errorf("Code = %q, esperado %q", appErr.Code.Code, ErrCodeDatabase.Code)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode = %d, esperado 500", appErr.StatusCode)
	}
}
