package usermanagement

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// SealedSessionData is the session state stored in a sealed cookie.
type SealedSessionData struct {
	// AccessToken is the current access token of the session.
	AccessToken AccessToken `json:"access_token"`

	// RefreshToken exchanges for a new access token.
	RefreshToken RefreshToken `json:"refresh_token"`

	// User is the authenticated user.
	User User `json:"user"`

	// Impersonator is the dashboard user impersonating the user, if any.
	Impersonator *Impersonator `json:"impersonator,omitempty"`
}

// NewSessionData builds SealedSessionData from an authentication response.
func NewSessionData(res *AuthenticateResponse) SealedSessionData {
	return SealedSessionData{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		User:         res.User,
		Impersonator: res.Impersonator,
	}
}

// SessionSealer seals and unseals session data with ChaCha20-Poly1305.
// The cookie password is hashed with SHA-256 to produce the 32-byte key.
type SessionSealer struct {
	aead interface {
		Seal(dst, nonce, plaintext, additionalData []byte) []byte
		Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
		NonceSize() int
	}
}

// NewSessionSealer creates a sealer keyed by the given cookie password.
func NewSessionSealer(password string) (*SessionSealer, error) {
	hasher := sha256.New()
	hasher.Write([]byte(password))

	aead, err := chacha20poly1305.New(hasher.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("create chacha20: %w", err)
	}
	return &SessionSealer{aead: aead}, nil
}

// Seal encrypts session data into a base64 string suitable for a cookie.
func (s *SessionSealer) Seal(data SealedSessionData) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Unseal decrypts a sealed session produced by Seal. A wrong password or a
// tampered value fails authentication and returns an error.
func (s *SessionSealer) Unseal(sealed string) (*SealedSessionData, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := s.aead.NonceSize()
	if len(raw) < nonceSize {
		return nil, fmt.Errorf("sealed session too short")
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("unseal session: %w", err)
	}

	var data SealedSessionData
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &data, nil
}
