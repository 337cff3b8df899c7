// Package jwt emite y valida los bearer tokens de sesión del marketplace.
//
// El core trata al token como un string opaco: lo emite al registrar/loguear
// y el middleware de auth extrae el subject. Nada más inspecciona claims.
package jwt

import (
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Issuer firma tokens HS256 con un secreto compartido.
type Issuer struct {
	Iss    string
	TTL    time.Duration
	secret []byte

	// now es inyectable para tests.
	now func() time.Time
}

// NewIssuer crea un Issuer. TTL <= 0 usa 24h.
func NewIssuer(iss, secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: empty signing secret")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{Iss: iss, TTL: ttl, secret: []byte(secret), now: time.Now}, nil
}

// IssueToken emite un token de sesión para un usuario.
func (i *Issuer) IssueToken(userID, email string) (string, error) {
	now := i.now()
	claims := jwtv5.MapClaims{
		"iss":   i.Iss,
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(i.TTL).Unix(),
	}
	tok := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, nil
}

// Parse valida firma, issuer y expiración, y retorna las claims.
func (i *Issuer) Parse(raw string) (jwtv5.MapClaims, error) {
	claims := jwtv5.MapClaims{}
	_, err := jwtv5.ParseWithClaims(raw, claims, func(t *jwtv5.Token) (any, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	}, jwtv5.WithIssuer(i.Iss), jwtv5.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Subject extrae el claim "sub" de un token ya validado.
func Subject(claims jwtv5.MapClaims) string {
	sub, _ := claims["sub"].(string)
	return sub
}
