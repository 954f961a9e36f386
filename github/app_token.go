package github

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
)

// maxAppTokenValidSec is the longest time GitHub accepts app tokens for.
const maxAppTokenValidSec int64 = 10 * 60

type (
	// AppTokenizerConfig contains fields which describe an AppTokenizer.
	AppTokenizerConfig struct {
		// AppID is the identifier of the GitHub App, used as the token issuer.
		AppID string
		// TimeFunc is a function which should supply the current time since the unix epoch.
		TimeFunc func() int64
		// ValidSec is the length of time the token is valid from the issuing time, in seconds.
		ValidSec int64
	}

	// AppTokenizer creates tokens that authenticate as a GitHub App.
	AppTokenizer struct {
		method jwt.SigningMethod
		key    *rsa.PrivateKey
		AppTokenizerConfig
	}
)

// NewAppTokenizer creates an AppTokenizer that signs tokens with the PEM encoded RSA private key of the app.
func (cfg AppTokenizerConfig) NewAppTokenizer(privateKeyPEM []byte) (*AppTokenizer, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating app tokenizer: validation: %w", err)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parsing app private key: %w", err)
	}
	t := AppTokenizer{
		method:             jwt.SigningMethodRS256,
		key:                key,
		AppTokenizerConfig: cfg,
	}
	return &t, nil
}

// Create signs a new token for the app.
// The token is issued a minute in the past to allow for clock drift.
func (t AppTokenizer) Create() (string, error) {
	now := t.TimeFunc()
	claims := jwt.RegisteredClaims{
		Issuer:    t.AppID,
		IssuedAt:  jwt.NewNumericDate(time.Unix(now-60, 0)),
		ExpiresAt: jwt.NewNumericDate(time.Unix(now+t.ValidSec, 0)),
	}
	token := jwt.NewWithClaims(t.method, claims)
	return token.SignedString(t.key)
}

// validate checks fields of the config.
func (cfg AppTokenizerConfig) validate() error {
	switch {
	case len(cfg.AppID) == 0:
		return errors.New("missing app id")
	case cfg.TimeFunc == nil:
		return errors.New("missing time func")
	case cfg.ValidSec <= 0:
		return errors.New("non-positive valid time")
	case cfg.ValidSec > maxAppTokenValidSec:
		return fmt.Errorf("valid time must be at most %v seconds", maxAppTokenValidSec)
	}
	return nil
}
