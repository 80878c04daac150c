package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reserve-go/types"
)

var GetPrincipalFromContext = func(c *gin.Context) (types.Principal, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return types.Principal{}, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return types.Principal{}, errors.New("invalid user claims type")
	}

	return types.Principal{ID: claims.UserID, Role: claims.Role}, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	p, err := GetPrincipalFromContext(c)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}
