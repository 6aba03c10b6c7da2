package types

import (
	"fmt"

	"github.com/google/uuid"
)

// SecretID identifies a secrets bundle in the secret store
type SecretID string

// String returns the string representation
func (id SecretID) String() string {
	return string(id)
}

// LookupID identifies a single lookup invocation, used for log correlation
type LookupID string

// String returns the string representation
func (id LookupID) String() string {
	return string(id)
}

// NewLookupID creates a new LookupID
func NewLookupID() LookupID {
	return LookupID(fmt.Sprintf("lookup-%s", uuid.New().String()))
}
