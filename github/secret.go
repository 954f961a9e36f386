package github

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/jacobpatterson1549/fetch-happen/fetch"
	"golang.org/x/crypto/nacl/box"
)

type (
	// PublicKey is used to encrypt the secrets of a repository.
	PublicKey struct {
		KeyID string `json:"key_id"`
		// Key is the base64 encoded Curve25519 key.
		Key string `json:"key"`
	}

	// encryptedSecret is the request body to create or update a secret.
	encryptedSecret struct {
		EncryptedValue string `json:"encrypted_value"`
		KeyID          string `json:"key_id"`
	}
)

// randReader is the source of ephemeral keys for sealing secrets.
var randReader io.Reader = rand.Reader

// PublicKey gets the key that secrets of the repository must be encrypted with.
func (c Client) PublicKey(ctx context.Context, repo string) (*PublicKey, error) {
	resp, err := c.request(fetch.MethodGet, "/repos/"+repo+"/actions/secrets/public-key").Send(ctx)
	if err != nil {
		return nil, fmt.Errorf("requesting public key: %w", err)
	}
	if _, err := resp.ErrorForStatus(); err != nil {
		return nil, fmt.Errorf("getting public key of %v: %w", repo, err)
	}
	k, err := fetch.DecodeJSON[PublicKey](resp)
	if err != nil {
		return nil, fmt.Errorf("reading public key: %w", err)
	}
	return &k, nil
}

// PutSecret creates or updates an actions secret of the repository.
// The value is sealed with the public key of the repository before it is sent.
func (c Client) PutSecret(ctx context.Context, repo, name, value string) error {
	k, err := c.PublicKey(ctx, repo)
	if err != nil {
		return err
	}
	sealed, err := k.Seal([]byte(value))
	if err != nil {
		return fmt.Errorf("encrypting secret: %w", err)
	}
	s := encryptedSecret{
		EncryptedValue: sealed,
		KeyID:          k.KeyID,
	}
	b, err := c.request(fetch.MethodPut, "/repos/"+repo+"/actions/secrets/"+name).JSON(s)
	if err != nil {
		return fmt.Errorf("creating secret request: %w", err)
	}
	resp, err := b.Send(ctx)
	if err != nil {
		return fmt.Errorf("requesting secret update: %w", err)
	}
	if _, err := resp.ErrorForStatus(); err != nil {
		return fmt.Errorf("putting secret %v on %v: %w", name, repo, err)
	}
	return resp.Close()
}

// Seal encrypts the message into an anonymous sealed box for the key, encoded as base64.
func (k PublicKey) Seal(message []byte) (string, error) {
	keyBytes, err := base64.StdEncoding.DecodeString(k.Key)
	if err != nil {
		return "", fmt.Errorf("decoding public key: %w", err)
	}
	if len(keyBytes) != 32 {
		return "", errors.New("public key must be 32 bytes")
	}
	var recipient [32]byte
	copy(recipient[:], keyBytes)
	sealed, err := box.SealAnonymous(nil, message, &recipient, randReader)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}
