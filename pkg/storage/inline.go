package storage

import "context"

// InlineStore keeps images on the row as data URIs
type InlineStore struct{}

// NewInlineStore creates an inline image store
func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

// Save encodes data as a data URI
func (s *InlineStore) Save(_ context.Context, _, _, contentType string, data []byte) (string, error) {
	return EncodeDataURI(contentType, data), nil
}

// Delete is a no-op; the reference disappears with the column value
func (s *InlineStore) Delete(context.Context, string) {}

// Remote always reports false
func (s *InlineStore) Remote() bool {
	return false
}
