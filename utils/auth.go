// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the fixed cost factor used for seeded passwords.
const DefaultBcryptCost = 10

// Generate JWT secret key (used when none is configured)
func GenerateJWTSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate JWT secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Hash password
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Authenticator issues and verifies dashboard session tokens.
type Authenticator struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewAuthenticator(secret string, expiry time.Duration) *Authenticator {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Authenticator{secret: []byte(secret), expiry: expiry, now: time.Now}
}

// Expiry is the lifetime of tokens issued by a.
func (a *Authenticator) Expiry() time.Duration { return a.expiry }

// Generate JWT token
func (a *Authenticator) GenerateToken(userID, email string) (string, error) {
	if len(a.secret) == 0 {
		return "", errors.New("JWT secret not set")
	}
	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   now.Add(a.expiry).Unix(),
		"iat":   now.Unix(),
	})
	return token.SignedString(a.secret)
}

// Auth middleware
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			if cookie, err := c.Cookie("token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header required"})
			return
		}

		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return a.secret, nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("userId", claims["sub"])
			c.Set("email", claims["email"])
		} else {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Next()
	}
}

// RespondWithError writes a JSON error body with the given status.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
