package utility

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/dgrijalva/jwt-go"

	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
)

// JwtClaims contém os dados codificados dentro do token JWT
type JwtClaims struct {
	UserID       string `json:"userId"`
	Scope        string `json:"scope"` // admin | cliente
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken gera um token JWT (HS256) assinado com o segredo do servidor
// @params - segredo, id do usuário, escopo, tempo e número aleatório
// @returns - token assinado e erro se houver
func CreateToken(secret string, userID string, scope string, timeHex string, randomNumber string) (string, error) {
	claims := &JwtClaims{
		UserID:       userID,
		Scope:        scope,
		Time:         timeHex,
		RandomNumber: randomNumber,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, common.MsgTokenInvalid, common.StatusInternalServerError, err)
	}
	return signed, nil
}

// ParseToken valida a assinatura do token e devolve as claims
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// HashPassword gera o digest SHA-256 da senha com o salt do servidor.
// O mesmo segredo do JWT é usado como salt, de forma que os digests
// só são comparáveis dentro da mesma instalação.
func HashPassword(secret string, password string) string {
	hash := sha256.Sum256([]byte(secret + ":" + password))
	return hex.EncodeToString(hash[:])
}
