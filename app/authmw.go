package app

import (
	"net/http"
	"strings"

	"github.com/SharadaShehan/IMS-Backend-sub000/db"
	"github.com/SharadaShehan/IMS-Backend-sub000/models"
	"github.com/SharadaShehan/IMS-Backend-sub000/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in the access token. The jti is checked against the Redis
// token store so logout and deactivation revoke tokens immediately.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

func AuthRequired(tokens *session.TokenStore, repo *db.Repo, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}

		var claims Claims
		_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return cfg.JWTSecret, nil
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid token"})
			return
		}
		if _, err := tokens.Get(c.Request.Context(), claims.ID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "token revoked"})
			return
		}

		// confirm the account is still active, and trust the stored role over
		// the token's in case it changed since issuance
		u, err := repo.FindUserByID(c.Request.Context(), claims.Subject)
		if err != nil {
			_ = tokens.Delete(c.Request.Context(), claims.ID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}

		c.Set("userID", u.ID)
		c.Set("role", u.Role)
		c.Set("displayName", u.DisplayName)
		c.Set("tokenID", claims.ID)
		c.Next()
	}
}

// RoleRequired gates a route group to the given roles. SystemAdmin passes
// every gate.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("role")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		role, _ := v.(models.Role)
		if role == models.RoleSystemAdmin {
			c.Next()
			return
		}
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
