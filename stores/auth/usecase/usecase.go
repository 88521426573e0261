package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/ethereum"
	"github.com/x-xyz/listingsync/base/validator"
	"github.com/x-xyz/listingsync/domain"
)

const tokenTTL = 24 * time.Hour

type impl struct {
	jwtSecret []byte
	nonce     domain.NonceRepo
	timeNow   func() time.Time
}

func New(jwtSecret string, nonce domain.NonceRepo) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(jwtSecret),
		nonce:     nonce,
		timeNow:   time.Now,
	}
}

func (im *impl) IssueNonce(ctx ctx.Ctx, address domain.Address) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}
	nonce := uuid.New().String()
	if err := im.nonce.Set(ctx, address.ToLower(), nonce); err != nil {
		ctx.WithField("err", err).Error("nonce.Set failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) Login(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}
	nonce, err := im.nonce.Pop(ctx, address.ToLower())
	if err == domain.ErrNotFound {
		return "", domain.ErrUnauthorized
	} else if err != nil {
		ctx.WithField("err", err).Error("nonce.Pop failed")
		return "", err
	}

	msg := fmt.Sprintf(domain.SigningMsgTemplate, nonce)
	ok, err := ethereum.ValidateMsgSignature([]byte(msg), signature, string(address))
	if err != nil {
		ctx.WithField("err", err).Warn("ethereum.ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}
	return im.SignToken(ctx, address)
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address) (string, error) {
	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: im.timeNow().Add(tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	str = strings.TrimPrefix(str, "Bearer ")
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return domain.Address(claims.Address), nil
	}
	return "", domain.ErrUnauthorized
}
