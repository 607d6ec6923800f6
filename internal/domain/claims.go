package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações extraídas do token emitido pelo provedor de
// identidade externo. A API não gerencia usuários, apenas valida o token.
type Claims struct {
	UserID     int    `json:"user_id"`
	UserRoleID int    `json:"user_role_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}
