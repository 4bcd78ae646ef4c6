package paseto

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/o1egl/paseto"

	"employee-portal/models"
	util "employee-portal/pkg/utils"
)

const issuer = "employee-portal"

type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewPasetoMaker builds a v2.local token maker from a base64 secret that
// decodes to exactly 32 bytes.
func NewPasetoMaker(secretBase64 string, ttl time.Duration) (*PasetoMaker, error) {
	decodedKey, err := util.DecodeBase64Key(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PASETO_SECRET: %w", err)
	}

	if len(decodedKey) != 32 {
		return nil, fmt.Errorf("PASETO_SECRET must be exactly 32 bytes after Base64 decoding, got %d bytes", len(decodedKey))
	}

	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: decodedKey,
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

func (m *PasetoMaker) TTL() time.Duration {
	return m.ttl
}

func (m *PasetoMaker) GenerateToken(user *models.User) (string, error) {
	now := m.now()
	exp := now.Add(m.ttl)

	token := paseto.JSONToken{
		Issuer:     issuer,
		Jti:        uuid.New().String(),
		Subject:    strconv.FormatInt(user.ID, 10),
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return m.paseto.Encrypt(m.symmetricKey, token, "")
}

func (m *PasetoMaker) ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	err := m.paseto.Decrypt(tokenString, m.symmetricKey, &token, &footer)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(paseto.IssuedBy(issuer), paseto.ValidAt(m.now())); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	userID, err := strconv.ParseInt(token.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject format: %w", err)
	}

	return &models.Claims{
		UserID: userID,
		Email:  token.Get("email"),
		Role:   token.Get("role"),
	}, nil
}
