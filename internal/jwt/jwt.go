package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anonboard-dev/anonboard/internal/domain"
	internal_errors "github.com/anonboard-dev/anonboard/internal/errors"
)

type JwtService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (domain.User, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = user.Id
	claims["username"] = user.Username
	claims["email"] = user.Email
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// DecodeToken verifies the signature and expiration and rebuilds the user
// from the claims.
func (j *Jwt) DecodeToken(jwtStr string) (domain.User, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return domain.User{}, internal_errors.Unauthorized("Invalid access token")
	}
	if !token.Valid {
		return domain.User{}, internal_errors.Unauthorized("Invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, internal_errors.Unauthorized("Invalid access token")
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return domain.User{}, internal_errors.Unauthorized("Invalid access token")
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return domain.User{Id: int64(uid), Username: username, Email: email}, nil
}
