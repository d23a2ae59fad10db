package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/remixer-xyz/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx.Ctx, Address) (string, error)
	ParseToken(ctx.Ctx, string) (string, error)
}
