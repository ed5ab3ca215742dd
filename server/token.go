package server

import (
	"errors"
	"fmt"

	"github.com/dgrijalva/jwt-go"
)

// token is what a proxied download link carries.
type token struct {
	Site string `json:"s"`
	Link string `json:"l"`
	jwt.StandardClaims
}

func (t *token) Encode(key []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, t).SignedString(key)
}

func decodeToken(tokenString string, key []byte) (*token, error) {
	t := &token{}
	parsed, err := jwt.ParseWithClaims(tokenString, t, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tk.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return t, nil
}
