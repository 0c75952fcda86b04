package utility

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRound2(t *testing.T) {
	casos := []struct {
		entrada  float64
		esperado float64
	}{
		{10.005, 10.01},
		{10.004, 10.0},
		{0.1 + 0.2, 0.3},
		{99.999, 100.0},
		{-1.005, -1.0},
		{0, 0},
	}
	for _, caso := range casos {
		if got := Round2(caso.entrada); got != caso.esperado {
			t.Errorf("Round2(%v) = %v, esperado %v", caso.entrada, got, caso.esperado)
		}
	}
}

func TestUnixMilli(t *testing.T) {
	instante := time.Date(2025, 3, 15, 12, 30, 45, 123_000_000, time.UTC)
	got := UnixMilli(instante)
	if got != instante.UnixMilli() {
		t.Errorf("UnixMilli = %d, esperado %d", got, instante.UnixMilli())
	}
}

func TestP2Int64(t *testing.T) {
	if got := P2Int64(json.Number("42")); got != 42 {
		t.Errorf("P2Int64(json.Number) = %d, esperado 42", got)
	}
	if got := P2Int64("17"); got != 17 {
		t.Errorf("P2Int64(string) = %d, esperado 17", got)
	}
	if got := P2Int64("abc"); got != 0 {
		t.Errorf("P2Int64(string inválida) = %d, esperado 0", got)
	}
	if got := P2Int64(3.9); got != 3 {
		t.Errorf("P2Int64(float64) = %d, esperado 3", got)
	}
	if got := P2Int64(nil); got != 0 {
		t.Errorf("P2Int64(nil) = %d, esperado 0", got)
	}
}

func TestP2Float64(t *testing.T) {
	if got := P2Float64(json.Number("4.5")); got != 4.5 {
		t.Errorf("P2Float64(json.Number) = %v, esperado 4.5", got)
	}
	if got := P2Float64("2.25"); got != 2.25 {
		t.Errorf("P2Float64(string) = %v, esperado 2.25", got)
	}
	if got := P2Float64(int64(7)); got != 7.0 {
		t.Errorf("P2Float64(int64) = %v, esperado 7", got)
	}
	if got := P2Float64(struct{}{}); got != 0 {
		t.Errorf("P2Float64(tipo desconhecido) = %v, esperado 0", got)
	}
}

func TestString2ObjectID(t *testing.T) {
	hex := "507f1f77bcf86cd799439011"
	oid := String2ObjectID(hex)
	if oid.IsZero() {
		t.Fatalf("String2ObjectID(%q) devolveu NilObjectID", hex)
	}
	if ObjectID2String(oid) != hex {
		t.Errorf("ida e volta do ObjectID alterou o valor: %s", ObjectID2String(oid))
	}

	if !String2ObjectID("nao-e-hex").IsZero() {
		t.Error("string inválida deveria virar NilObjectID")
	}
}

func TestContains(t *testing.T) {
	campos := []string{"senha", "token", "hash"}
	if !Contains(campos, "token") {
		t.Error("Contains deveria encontrar 'token'")
	}
	if Contains(campos, "nome") {
		t.Error("Contains não deveria encontrar 'nome'")
	}
	if Contains([]string{}, "x") {
		t.Error("Contains em slice vazio deveria ser false")
	}
}
