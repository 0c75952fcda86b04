package utility

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// GoProtect é um wrapper que protege uma função contra panic.
// Se f() entrar em panic, GoProtect captura e registra o erro em vez de
// derrubar o processo.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Printf("Panic capturado: %v\n", err)
		}
	}()

	f()
}

// PrettyPrint formata um valor como JSON identado
func PrettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}

// UnixMilli retorna os milissegundos do tempo informado
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli retorna o timestamp atual em milissegundos.
// Usado para os campos createdAt/updatedAt dos documentos.
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

// Round2 arredonda um valor monetário para duas casas decimais
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
