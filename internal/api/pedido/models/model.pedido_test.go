// Package models - testes da tabela de transições de status.
package models

import "testing"

func TestTransicaoValida_CadeiaCompleta(t *testing.T) {
	cadeia := []string{
		StatusAguardandoPagamento,
		StatusRecebido,
		StatusConfirmado,
		StatusPreparando,
		StatusSaiuParaEntrega,
		StatusFinalizado,
	}
	for i := 0; i < len(cadeia)-1; i++ {
		if !TransicaoValida(cadeia[i], cadeia[i+1]) {
			t.Errorf("transição de %q para %q deveria ser válida", cadeia[i], cadeia[i+1])
		}
	}
}

func TestTransicaoValida_CanceladoDeQualquerNaoTerminal(t *testing.T) {
	naoTerminais := []string{
		StatusAguardandoPagamento,
		StatusRecebido,
		StatusConfirmado,
		StatusPreparando,
		StatusSaiuParaEntrega,
	}
	for _, status := range naoTerminais {
		if !TransicaoValida(status, StatusCancelado) {
			t.Errorf("cancelamento a partir de %q deveria ser válido", status)
		}
	}
}

func TestTransicaoValida_RejeitaForaDaTabela(t *testing.T) {
	invalidas := [][2]string{
		{StatusAguardandoPagamento, StatusConfirmado}, // pula o recebido
		{StatusRecebido, StatusSaiuParaEntrega},       // pula confirmado e preparando
		{StatusConfirmado, StatusFinalizado},
		{StatusSaiuParaEntrega, StatusRecebido}, // volta na cadeia
		{StatusFinalizado, StatusCancelado},     // terminal
		{StatusCancelado, StatusRecebido},       // terminal
	}
	for _, par := range invalidas {
		if TransicaoValida(par[0], par[1]) {
			t.Errorf("transição de %q para %q deveria ser rejeitada", par[0], par[1])
		}
	}
}

func TestStatusConhecido(t *testing.T) {
	for status := range TransicoesValidas {
		if !StatusConhecido(status) {
			t.Errorf("status %q deveria ser conhecido", status)
		}
	}
	if StatusConhecido("em_transito") {
		t.Error("status fora da tabela não deveria ser conhecido")
	}
	if StatusConhecido("") {
		t.Error("status vazio não deveria ser conhecido")
	}
}
