package auth

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const tokenSegments = 3

type tokenDecoder struct {
	parser *jwt.Parser
}

// NewTokenDecoder creates a SessionDecoder that reads claims without checking the signature.
func NewTokenDecoder() service.SessionDecoder {
	return &tokenDecoder{
		parser: jwt.NewParser(jwt.WithPaddingAllowed()),
	}
}

// Decode extracts {id, email, role, exp} from the middle segment of token.
// The header and signature segments are not inspected.
func (d *tokenDecoder) Decode(token string) (*entity.SessionIdentity, error) {
	segments := strings.Split(strings.TrimSpace(token), ".")
	if len(segments) != tokenSegments {
		return nil, domainerrors.ErrDecodeFailed.WithDetails("token must have three dot-separated segments")
	}

	payload, err := d.decodeSegment(segments[1])
	if err != nil {
		return nil, domainerrors.ErrDecodeFailed.WithDetails("payload is not base64: " + err.Error())
	}

	claims := jwt.MapClaims{}
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	if err := decoder.Decode(&claims); err != nil {
		return nil, domainerrors.ErrDecodeFailed.WithDetails("payload is not a JSON object: " + err.Error())
	}
	if claims == nil {
		return nil, domainerrors.ErrDecodeFailed.WithDetails("payload is not a JSON object")
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, domainerrors.ErrDecodeFailed.WithDetails("payload has trailing data after the JSON object")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, domainerrors.ErrDecodeFailed.WithDetails("exp claim is not numeric")
	}

	identity := &entity.SessionIdentity{
		SubjectID: subjectID(claims),
		Email:     stringClaim(claims, "email"),
		Role:      entity.Role(stringClaim(claims, "role")),
	}
	if exp != nil {
		expiresAt := exp.Time
		identity.ExpiresAt = &expiresAt
	}

	return identity, nil
}

// decodeSegment accepts base64url (the JWT encoding) and falls back to standard base64.
func (d *tokenDecoder) decodeSegment(segment string) ([]byte, error) {
	payload, err := d.parser.DecodeSegment(segment)
	if err == nil {
		return payload, nil
	}

	if l := len(segment) % 4; l > 0 {
		segment += strings.Repeat("=", 4-l)
	}
	payload, stdErr := base64.StdEncoding.DecodeString(segment)
	if stdErr != nil {
		return nil, err
	}

	return payload, nil
}

func subjectID(claims jwt.MapClaims) entity.ID {
	switch v := claims["id"].(type) {
	case string:
		return entity.ID(v)
	case json.Number:
		return entity.ID(v.String())
	}

	if sub, err := claims.GetSubject(); err == nil {
		return entity.ID(sub)
	}

	return ""
}

func stringClaim(claims jwt.MapClaims, name string) string {
	v, _ := claims[name].(string)

	return v
}
