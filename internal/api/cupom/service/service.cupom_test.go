// Package cupomsvc - testes da disponibilidade e normalização de cupom.
package cupomsvc

import (
	"testing"

	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNormalizarCodigo(t *testing.T) {
	casos := map[string]string{
		"  promo10  ": "PROMO10",
		"Promo10":     "PROMO10",
		"PROMO10":     "PROMO10",
		"":            "",
	}
	for entrada, esperado := range casos {
		if saida := NormalizarCodigo(entrada); saida != esperado {
			t.Errorf("NormalizarCodigo(%q) esperado %q, veio %q", entrada, esperado, saida)
		}
	}
}

func TestCupomDisponivel_AtivoDentroDaJanela(t *testing.T) {
	agora := int64(1_000_000)
	cupom := &models.Cupom{
		Codigo:    "PROMO10",
		Ativo:     true,
		ValidoDe:  int64Ptr(agora - 100),
		ValidoAte: int64Ptr(agora + 100),
	}
	atribuicao := &models.CupomCliente{Codigo: "PROMO10", Usos: 0}

	if !CupomDisponivel(cupom, atribuicao, agora) {
		t.Error("cupom ativo dentro da janela deveria estar disponível")
	}
}

func TestCupomDisponivel_ForaDaJanela(t *testing.T) {
	agora := int64(1_000_000)
	atribuicao := &models.CupomCliente{Usos: 0}

	aindaNaoVale := &models.Cupom{Ativo: true, ValidoDe: int64Ptr(agora + 1)}
	if CupomDisponivel(aindaNaoVale, atribuicao, agora) {
		t.Error("cupom com validoDe no futuro não deveria estar disponível")
	}

	jaExpirou := &models.Cupom{Ativo: true, ValidoAte: int64Ptr(agora - 1)}
	if CupomDisponivel(jaExpirou, atribuicao, agora) {
		t.Error("cupom expirado não deveria estar disponível")
	}

	// Sem janela definida vale sempre
	semJanela := &models.Cupom{Ativo: true}
	if !CupomDisponivel(semJanela, atribuicao, agora) {
		t.Error("cupom sem janela deveria estar disponível")
	}
}

func TestCupomDisponivel_UsosEsgotados(t *testing.T) {
	agora := int64(1_000_000)
	cupom := &models.Cupom{Ativo: true, UsosPorCliente: int64Ptr(2)}

	if !CupomDisponivel(cupom, &models.CupomCliente{Usos: 1}, agora) {
		t.Error("cupom com usos restantes deveria estar disponível")
	}
	if CupomDisponivel(cupom, &models.CupomCliente{Usos: 2}, agora) {
		t.Error("cupom com usos esgotados não deveria estar disponível")
	}

	// Sem limite de usos por cliente
	semLimite := &models.Cupom{Ativo: true}
	if !CupomDisponivel(semLimite, &models.CupomCliente{Usos: 99}, agora) {
		t.Error("cupom sem limite de usos deveria estar disponível")
	}
}

func TestCupomDisponivel_InativoOuSemAtribuicao(t *testing.T) {
	agora := int64(1_000_000)

	inativo := &models.Cupom{Ativo: false}
	if CupomDisponivel(inativo, &models.CupomCliente{}, agora) {
		t.Error("cupom inativo não deveria estar disponível")
	}

	ativo := &models.Cupom{Ativo: true}
	if CupomDisponivel(ativo, nil, agora) {
		t.Error("cupom sem atribuição não deveria estar disponível")
	}
	if CupomDisponivel(nil, &models.CupomCliente{}, agora) {
		t.Error("cupom nil não deveria estar disponível")
	}
}

func TestPodeEnviar(t *testing.T) {
	if !PodeEnviar(nil) {
		t.Error("cupom sem contador deveria enviar sem limite")
	}
	if !PodeEnviar(int64Ptr(1)) {
		t.Error("cupom com quantidade restante deveria enviar")
	}
	if PodeEnviar(int64Ptr(0)) {
		t.Error("cupom esgotado não deveria enviar")
	}
	if PodeEnviar(int64Ptr(-3)) {
		t.Error("contador negativo conta como esgotado")
	}
}

func TestConsumirRestante(t *testing.T) {
	// Sem contador nada é consumido e o envio nunca esgota
	if restante, esgotado := ConsumirRestante(nil); restante != nil || esgotado {
		t.Errorf("ConsumirRestante(nil) = (%v, %v), esperado (nil, false)", restante, esgotado)
	}

	restante, esgotado := ConsumirRestante(int64Ptr(2))
	if restante == nil || *restante != 1 || esgotado {
		t.Errorf("consumir de 2 deveria deixar 1 sem esgotar, veio (%v, %v)", restante, esgotado)
	}

	restante, esgotado = ConsumirRestante(int64Ptr(1))
	if restante == nil || *restante != 0 || !esgotado {
		t.Errorf("consumir de 1 deveria esgotar em 0, veio (%v, %v)", restante, esgotado)
	}

	// O contador nunca fica negativo
	restante, esgotado = ConsumirRestante(int64Ptr(0))
	if restante == nil || *restante != 0 || !esgotado {
		t.Errorf("consumir de 0 deveria segurar o piso em 0, veio (%v, %v)", restante, esgotado)
	}
}
