package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yanqian/summarize-console/internal/domain/auth"
)

const authClaimsKey = "auth_claims"

func setClaims(c *gin.Context, claims auth.Claims) {
	c.Set(authClaimsKey, claims)
}

func subjectOf(c *gin.Context) string {
	value, ok := c.Get(authClaimsKey)
	if !ok {
		return ""
	}
	claims, ok := value.(auth.Claims)
	if !ok {
		return ""
	}
	return claims.Subject
}
