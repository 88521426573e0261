package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/listingsync/base/ctx"
)

// SigningMsgTemplate is signed by the wallet with the issued nonce.
const SigningMsgTemplate = "Sign in to the listing index.\n\nNonce: %s"

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// IssueNonce returns a single use nonce for address
	IssueNonce(ctx ctx.Ctx, address Address) (string, error)
	// Login checks the signature over the nonce message and returns a token
	Login(ctx ctx.Ctx, address Address, signature string) (string, error)
	SignToken(ctx ctx.Ctx, address Address) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (Address, error)
}

// NonceRepo keeps nonces until consumed or expired
type NonceRepo interface {
	Set(ctx ctx.Ctx, address Address, nonce string) error
	// Pop returns and deletes the nonce, ErrNotFound if absent
	Pop(ctx ctx.Ctx, address Address) (string, error)
}
