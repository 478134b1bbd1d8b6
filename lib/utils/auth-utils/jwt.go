package authutils

import (
	"ets-backend/config"
	"ets-backend/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

func GetToken(userID, name, companyID string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":    name,
		"sub":     userID,
		"company": companyID,
		"admin":   role.IsAdmin(),
		"role":    string(role),
	}
	return Sign(config.Conf.Auth.JWTSecret, claims, time.Second*time.Duration(config.Conf.Auth.JWTExpireInSec))
}

func GetRefreshToken(userID, name string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":    name,
		"sub":     userID,
		"refresh": true,
	}
	return Sign(config.Conf.Auth.JWTSecret, claims, time.Second*time.Duration(config.Conf.Auth.JWTRefreshExpireInSec))
}

// ParseRefreshToken returns the user id of a valid refresh token.
func ParseRefreshToken(tokenString string) (string, error) {
	claims, err := Parse(config.Conf.Auth.JWTSecret, tokenString)
	if err != nil {
		return "", err
	}
	if refresh, _ := claims["refresh"].(bool); !refresh {
		return "", errors.New("not a refresh token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("token subject is missing")
	}
	return sub, nil
}

// Sign issues an HS256 token with iat/exp set from ttl.
func Sign(secret string, claims jwt.MapClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func Parse(secret, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	return claims, nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}
