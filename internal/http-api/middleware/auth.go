package middleware

import (
	"net/http"
	"strings"

	"schoolrate/internal/http-api/repository"
	"schoolrate/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a token in the Authorization
// header and puts the student identity into the request context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// Set student info in context for handlers to use
		c.Set("claims", claims)
		c.Set("studentID", claims.StudentID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// RequireAdmin guards admin-only routes. Admin capability is plain
// membership of the username in the admin table, looked up per request so a
// revoked admin loses access without re-login.
func RequireAdmin(adminRepo repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		usernameValue, exists := c.Get("username")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Student not authenticated"})
			c.Abort()
			return
		}

		username, ok := usernameValue.(string)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Student not authenticated"})
			c.Abort()
			return
		}

		isAdmin, err := adminRepo.IsAdmin(username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			c.Abort()
			return
		}
		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin capability required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
