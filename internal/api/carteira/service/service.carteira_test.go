package carteirasvc

import (
	"errors"
	"testing"

	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
)

func TestSaldoAposDebito_SaldoInsuficiente(t *testing.T) {
	if _, err := SaldoAposDebito(50, 60); !errors.Is(err, common.ErrSaldoInsuficiente) {
		t.Errorf("saldo 50 com débito 60 deveria rejeitar com ErrSaldoInsuficiente, veio %v", err)
	}

	// Sem carteira o débito parte de saldo zero
	if _, err := SaldoAposDebito(0, 10); !errors.Is(err, common.ErrSaldoInsuficiente) {
		t.Errorf("saldo zero com débito 10 deveria rejeitar com ErrSaldoInsuficiente, veio %v", err)
	}
}

func TestSaldoAposDebito_SaldoExato(t *testing.T) {
	saldo, err := SaldoAposDebito(50, 50)
	if err != nil {
		t.Fatalf("débito do saldo exato deveria passar, veio %v", err)
	}
	if saldo != 0 {
		t.Errorf("saldo restante = %v, esperado 0", saldo)
	}
}

func TestSaldoAposDebito_Arredondamento(t *testing.T) {
	saldo, err := SaldoAposDebito(10.10, 0.05)
	if err != nil {
		t.Fatalf("débito dentro do saldo deveria passar, veio %v", err)
	}
	if saldo != 10.05 {
		t.Errorf("saldo restante = %v, esperado 10.05", saldo)
	}
}

func TestDebitoParcialAplicavel(t *testing.T) {
	casos := []struct {
		saldo    float64
		valor    float64
		esperado float64
	}{
		{30, 90, 30}, // saldo cobre parte do total
		{90, 30, 30}, // saldo cobre tudo
		{0, 50, 0},   // sem saldo nada é abatido
		{-5, 50, 0},  // saldo negativo conta como zero
	}
	for _, caso := range casos {
		if got := DebitoParcialAplicavel(caso.saldo, caso.valor); got != caso.esperado {
			t.Errorf("DebitoParcialAplicavel(%v, %v) = %v, esperado %v", caso.saldo, caso.valor, got, caso.esperado)
		}
	}
}
