package service

import (
	"storefront/internal/domain/entity"
)

// SessionDecoder extracts the identity claims of a session token without verifying its signature.
// The result is advisory: the backend re-validates the token on every authenticated request.
type SessionDecoder interface {
	// Decode returns ErrDecodeFailed when the token is not three segments or the payload is not base64url JSON.
	Decode(token string) (*entity.SessionIdentity, error)
}
