// Package id generates compact identifiers for registry entries.
package id

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a random 26 character lowercase base32 identifier
// backed by a UUIDv4.
func NewID() (string, error) {
	raw, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ToLower(encoding.EncodeToString(raw[:])), nil
}
