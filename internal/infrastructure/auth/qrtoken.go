package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/config"
	"tongpass/internal/shared/constants"
	"tongpass/internal/shared/errors"
)

// devSignaturePrefix marks tokens signed without a real secret. Only accepted
// when insecure dev mode is explicitly enabled.
const devSignaturePrefix = "dev-signature-"

// QRTokenService implements attendance.TokenService with HMAC-SHA256 over
// the canonical "workerID:timestamp:expiresAt" string. The key id travels
// with the token so the secret can be rotated without invalidating tokens
// signed with a still-listed previous key.
type QRTokenService struct {
	keyID    string
	keys     map[string][]byte
	validity time.Duration
	insecure bool
}

func NewQRTokenService(cfg *config.QRConfig) (*QRTokenService, error) {
	if cfg.Secret == "" && !cfg.InsecureDevMode {
		return nil, errors.NewConfigurationError("qr signing secret is not configured")
	}

	validity := cfg.ValiditySeconds
	if validity <= 0 {
		validity = constants.DefaultQRValiditySeconds
	}

	keys := make(map[string][]byte, len(cfg.PreviousKeys)+1)
	for id, secret := range cfg.PreviousKeys {
		if secret != "" {
			keys[id] = []byte(secret)
		}
	}
	if cfg.Secret != "" {
		keys[cfg.KeyID] = []byte(cfg.Secret)
	}

	return &QRTokenService{
		keyID:    cfg.KeyID,
		keys:     keys,
		validity: time.Duration(validity) * time.Second,
		insecure: cfg.InsecureDevMode,
	}, nil
}

// Validity returns the configured token lifetime.
func (s *QRTokenService) Validity() time.Duration {
	return s.validity
}

// Issue signs a fresh token for the worker.
func (s *QRTokenService) Issue(workerID string) (*attendance.Token, error) {
	if workerID == "" {
		return nil, fmt.Errorf("worker id is required")
	}

	now := biztime.NowUTC()
	timestamp := now.UnixMilli()
	expiresAt := now.Add(s.validity).UnixMilli()

	signature, keyID, err := s.sign(workerID, timestamp, expiresAt)
	if err != nil {
		return nil, err
	}

	return &attendance.Token{
		WorkerID:  workerID,
		Timestamp: timestamp,
		ExpiresAt: expiresAt,
		Signature: signature,
		KeyID:     keyID,
	}, nil
}

// Verify checks the token signature, then its expiry. Signature mismatch and
// expiry are distinct failures since the operator's corrective action differs.
func (s *QRTokenService) Verify(token *attendance.Token) error {
	if token == nil || token.WorkerID == "" || token.Signature == "" {
		return errors.NewInvalidQRTokenError()
	}

	if err := s.verifySignature(token); err != nil {
		return err
	}

	if biztime.NowUTC().UnixMilli() > token.ExpiresAt {
		return errors.NewQRTokenExpiredError()
	}

	return nil
}

func (s *QRTokenService) sign(workerID string, timestamp, expiresAt int64) (signature, keyID string, err error) {
	secret, ok := s.keys[s.keyID]
	if !ok {
		if s.insecure {
			return fmt.Sprintf("%s%d", devSignaturePrefix, timestamp), "", nil
		}
		return "", "", errors.NewConfigurationError("qr signing secret is not configured")
	}

	return computeSignature(secret, workerID, timestamp, expiresAt), s.keyID, nil
}

func (s *QRTokenService) verifySignature(token *attendance.Token) error {
	if strings.HasPrefix(token.Signature, devSignaturePrefix) {
		if s.insecure {
			return nil
		}
		return errors.NewInvalidQRTokenError()
	}

	// Tokens issued before a rotation carry the previous key id.
	keyID := token.KeyID
	if keyID == "" {
		keyID = s.keyID
	}
	secret, ok := s.keys[keyID]
	if !ok {
		return errors.NewInvalidQRTokenError()
	}

	expected := computeSignature(secret, token.WorkerID, token.Timestamp, token.ExpiresAt)
	if !hmac.Equal([]byte(expected), []byte(token.Signature)) {
		return errors.NewInvalidQRTokenError()
	}

	return nil
}

func computeSignature(secret []byte, workerID string, timestamp, expiresAt int64) string {
	payload := fmt.Sprintf("%s:%d:%d", workerID, timestamp, expiresAt)
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
