package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrGameMismatch  = errors.New("token does not belong to this game")
	errSigningMethod = errors.New("invalid signing method")
)

// GameClaims binds a bearer token to a single game session.
type GameClaims struct {
	GameID string `json:"game_id"`
	jwt.RegisteredClaims
}

// Issuer signs and validates game tokens with an HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateGameToken creates a token that authorizes moves in gameID.
func (i *Issuer) GenerateGameToken(gameID string) (string, error) {
	now := i.now()
	claims := &GameClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   gameID,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ValidateGameToken checks the signature and expiry and returns the claims.
func (i *Issuer) ValidateGameToken(tokenString string) (*GameClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &GameClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errSigningMethod
		}
		return i.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*GameClaims); ok && token.Valid && claims.GameID != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// AuthorizeGame validates tokenString and checks it was issued for gameID.
func (i *Issuer) AuthorizeGame(tokenString, gameID string) error {
	claims, err := i.ValidateGameToken(tokenString)
	if err != nil {
		return err
	}
	if claims.GameID != gameID {
		return ErrGameMismatch
	}
	return nil
}
