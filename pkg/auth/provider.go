package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// ProviderClaims are the session claims issued by the hosted auth provider.
type ProviderClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// ProviderVerifier checks provider session tokens. RS256 is used when a public
// key is configured, otherwise HS256 with a shared secret.
type ProviderVerifier struct {
	key    any
	method string
	issuer string
}

func NewProviderVerifier(publicKeyPEM, secret, issuer string) (*ProviderVerifier, error) {
	if publicKeyPEM != "" {
		// env files often carry the PEM on one line
		pem := strings.ReplaceAll(publicKeyPEM, `\n`, "\n")
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			return nil, fmt.Errorf("parse provider public key: %w", err)
		}
		return &ProviderVerifier{key: key, method: jwt.SigningMethodRS256.Alg(), issuer: issuer}, nil
	}
	if secret == "" {
		return nil, errors.New("provider verifier needs a public key or a secret")
	}
	return &ProviderVerifier{key: []byte(secret), method: jwt.SigningMethodHS256.Alg(), issuer: issuer}, nil
}

func (v *ProviderVerifier) Verify(tokenStr string) (*ProviderClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{v.method}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &ProviderClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}
