package utility

import "testing"

const segredoTeste = "segredo-de-teste"

func TestCreateParseToken_IdaEVolta(t *testing.T) {
	token, err := CreateToken(segredoTeste, "507f1f77bcf86cd799439011", "admin", "18f3a2", "42")
	if err != nil {
		t.Fatalf("CreateToken falhou: %v", err)
	}

	claims, err := ParseToken(segredoTeste, token)
	if err != nil {
		t.Fatalf("ParseToken falhou: %v", err)
	}
	if claims.UserID != "507f1f77bcf86cd799439011" {
		t.Errorf("UserID = %q, esperado o id original", claims.UserID)
	}
	if claims.Scope != "admin" {
		t.Errorf("Scope = %q, esperado 'admin'", claims.Scope)
	}
}

func TestParseToken_SegredoErrado(t *testing.T) {
	token, err := CreateToken(segredoTeste, "abc", "cliente", "0", "1")
	if err != nil {
		t.Fatalf("CreateToken falhou: %v", err)
	}

	if _, err := ParseToken("outro-segredo", token); err == nil {
		t.Error("token assinado com outro segredo deveria ser rejeitado")
	}
}

func TestParseToken_Lixo(t *testing.T) {
	if _, err := ParseToken(segredoTeste, "nao.e.jwt"); err == nil {
		t.Error("string que não é JWT deveria ser rejeitada")
	}
}

func TestHashPassword_Deterministico(t *testing.T) {
	a := HashPassword(segredoTeste, "minha-senha")
	b := HashPassword(segredoTeste, "minha-senha")
	if a != b {
		t.Error("o digest da mesma senha com o mesmo salt deveria ser estável")
	}
	if len(a) != 64 {
		t.Errorf("digest SHA-256 em hex deveria ter 64 caracteres, veio %d", len(a))
	}

	if HashPassword(segredoTeste, "outra-senha") == a {
		t.Error("senhas diferentes não deveriam colidir no digest")
	}
	if HashPassword("outro-salt", "minha-senha") == a {
		t.Error("salts diferentes não deveriam produzir o mesmo digest")
	}
}
