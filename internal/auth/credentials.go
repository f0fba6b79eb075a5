package auth

import (
	"encoding/base64"
	"strings"
)

const (
	schemeBasic  = "basic"
	schemeBearer = "bearer"
)

// splitHeader breaks a credential header into its scheme and value parts.
func splitHeader(header string) (scheme, value string, err error) {
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", "", ErrMalformedCredential
	}
	return parts[0], parts[1], nil
}

// ParseBasic decodes a `Basic base64(email:password)` credential header.
func ParseBasic(header string) (email, password string, err error) {
	scheme, value, err := splitHeader(header)
	if err != nil {
		return "", "", err
	}
	if !strings.EqualFold(scheme, schemeBasic) {
		return "", "", ErrWrongScheme
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", "", ErrMalformedCredential
	}

	email, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", ErrMalformedCredential
	}
	return email, password, nil
}

// ParseBearer extracts the token from a `Bearer token` credential header.
func ParseBearer(header string) (string, error) {
	scheme, value, err := splitHeader(header)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(scheme, schemeBearer) {
		return "", ErrWrongScheme
	}
	return value, nil
}
