package cryptography

import (
	"encoding/json"
	"fmt"
)

// EncryptEmbedding serialises a face embedding and encrypts it for storage.
// The embedding is JSON encoded before encryption; float32 values survive
// the JSON round trip bit for bit, which the comparator depends on.
func EncryptEmbedding(embedding []float32) (*string, error) {
	if len(embedding) == 0 {
		return nil, fmt.Errorf("cannot encrypt an empty embedding")
	}
	payload, err := json.Marshal(embedding)
	if err != nil {
		return nil, fmt.Errorf("failed to serialise embedding: %w", err)
	}
	return EncryptData(payload, nil)
}

// DecryptEmbedding reverses EncryptEmbedding.
func DecryptEmbedding(blob string) ([]float32, error) {
	payload, err := DecryptData(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt embedding: %w", err)
	}
	var embedding []float32
	if err := json.Unmarshal(payload, &embedding); err != nil {
		return nil, fmt.Errorf("failed to deserialise embedding: %w", err)
	}
	if len(embedding) == 0 {
		return nil, fmt.Errorf("decrypted embedding is empty")
	}
	return embedding, nil
}
