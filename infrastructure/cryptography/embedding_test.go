package cryptography

import (
	"math"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// 32 byte key, hex encoded, matching the ENC_KEY format used in deployments
	os.Setenv("ENC_KEY", "befc7f4288f1ab1f7f8f9dba0fd1a9b3befc7f4288f1ab1f7f8f9dba0fd1a9b3")
	os.Exit(m.Run())
}

func TestEncryptEmbeddingRoundTrip(t *testing.T) {
	embedding := []float32{0.0125, -0.734, 1.0, -1.0, 0, float32(math.Pi), 0.99999}

	blob, err := EncryptEmbedding(embedding)
	if err != nil {
		t.Fatalf("EncryptEmbedding() unexpected error = %v", err)
	}
	if blob == nil || *blob == "" {
		t.Fatal("EncryptEmbedding() returned empty blob")
	}

	decrypted, err := DecryptEmbedding(*blob)
	if err != nil {
		t.Fatalf("DecryptEmbedding() unexpected error = %v", err)
	}
	if len(decrypted) != len(embedding) {
		t.Fatalf("round trip changed embedding length: got %d want %d", len(decrypted), len(embedding))
	}
	for i := range embedding {
		if decrypted[i] != embedding[i] {
			t.Errorf("round trip changed value at %d: got %v want %v", i, decrypted[i], embedding[i])
		}
	}
}

func TestEncryptEmbeddingRejectsEmpty(t *testing.T) {
	if _, err := EncryptEmbedding(nil); err == nil {
		t.Error("EncryptEmbedding(nil) expected error but got none")
	}
	if _, err := EncryptEmbedding([]float32{}); err == nil {
		t.Error("EncryptEmbedding(empty) expected error but got none")
	}
}

func TestDecryptEmbeddingRejectsGarbage(t *testing.T) {
	if _, err := DecryptEmbedding("not-a-valid-blob"); err == nil {
		t.Error("DecryptEmbedding(garbage) expected error but got none")
	}
}

func TestEncryptEmbeddingBlobsDiffer(t *testing.T) {
	embedding := []float32{0.25, 0.5, 0.75}
	blob1, err := EncryptEmbedding(embedding)
	if err != nil {
		t.Fatalf("EncryptEmbedding() unexpected error = %v", err)
	}
	blob2, err := EncryptEmbedding(embedding)
	if err != nil {
		t.Fatalf("EncryptEmbedding() unexpected error = %v", err)
	}
	// random IV per blob; identical plaintexts must not produce identical ciphertexts
	if *blob1 == *blob2 {
		t.Error("expected distinct ciphertexts for repeated encryptions")
	}
}
