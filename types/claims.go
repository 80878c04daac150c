package types

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller every core operation receives
// explicitly. No service reads ambient session state.
type Principal struct {
	ID   uint
	Role string
}

func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}
