package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the token subject (user id, string-encoded) plus an
// optional device identifier.
type Claims struct {
	Dev string `json:"dev,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Tokens mints and verifies access and refresh tokens. The two token
// families are signed with distinct secrets and carry distinct TTLs.
type Tokens struct {
	AccessSecret  []byte
	RefreshSecret []byte
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func (t *Tokens) IssueAccess(userID int64, deviceID string) (string, error) {
	return t.issue(userID, deviceID, t.AccessSecret, t.AccessTTL)
}

func (t *Tokens) IssueRefresh(userID int64, deviceID string) (string, error) {
	return t.issue(userID, deviceID, t.RefreshSecret, t.RefreshTTL)
}

func (t *Tokens) issue(userID int64, deviceID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Dev: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    t.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (t *Tokens) ParseAccess(tokenStr string) (*Claims, error) {
	return t.parse(tokenStr, t.AccessSecret)
}

func (t *Tokens) ParseRefresh(tokenStr string) (*Claims, error) {
	return t.parse(tokenStr, t.RefreshSecret)
}

func (t *Tokens) parse(tokenStr string, secret []byte) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return secret, nil
	}, jwt.WithIssuer(t.Issuer), jwt.WithLeeway(60*time.Second))

	if err != nil {
		return nil, err
	}
	if c, ok := tok.Claims.(*Claims); ok && tok.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}
