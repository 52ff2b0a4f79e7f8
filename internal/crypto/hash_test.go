package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/crypto/argon2"
)

func TestHashPasswordEncoding(t *testing.T) {
	hash, err := HashPassword("dragonfire-tonic-9")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashPassword() expected 6 PHC segments, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashPassword() algorithm = %q, want argon2id", parts[1])
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		t.Errorf("HashPassword() version segment = %q", parts[2])
	}

	// The parameter segment must carry the package's hashing constants so
	// verification reads them back from the hash itself.
	wantParams := fmt.Sprintf("m=%d,t=%d,p=%d", hashMemory, hashIterations, hashParallelism)
	if parts[3] != wantParams {
		t.Errorf("HashPassword() params = %q, want %q", parts[3], wantParams)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		t.Fatalf("salt segment is not raw base64: %v", err)
	}
	if len(salt) != saltLength {
		t.Errorf("salt length = %d, want %d", len(salt), saltLength)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		t.Fatalf("key segment is not raw base64: %v", err)
	}
	if uint32(len(key)) != keyLength {
		t.Errorf("key length = %d, want %d", len(key), keyLength)
	}
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	password := "moonwell-draught-42"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	match, err := VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if !match {
		t.Error("VerifyPassword() returned false for correct password")
	}

	match, err = VerifyPassword("moonwell-draught-43", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if match {
		t.Error("VerifyPassword() returned true for wrong password")
	}
}

func TestHashPasswordSaltsEveryHash(t *testing.T) {
	hash1, err := HashPassword("same-brew")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	hash2, err := HashPassword("same-brew")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("HashPassword() produced identical hashes for the same password")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	malformed := []string{
		"",
		"plain-hash",
		"$argon2id$v=19$m=65536,t=3,p=2$onlyfive",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$a2V5",
		"$argon2id$v=19$m=what,t=3,p=2$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$a2V5",
		"$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$!!!",
	}

	for _, hash := range malformed {
		match, err := VerifyPassword("anything", hash)
		if !errors.Is(err, ErrInvalidHashFormat) {
			t.Errorf("VerifyPassword(%q) error = %v, want ErrInvalidHashFormat", hash, err)
		}
		if match {
			t.Errorf("VerifyPassword(%q) matched a malformed hash", hash)
		}
	}
}

func TestVerifyPasswordIncompatibleVersion(t *testing.T) {
	hash := fmt.Sprintf("$argon2id$v=%d$m=65536,t=3,p=2$%s$%s",
		argon2.Version+1,
		base64.RawStdEncoding.EncodeToString([]byte("0123456789abcdef")),
		base64.RawStdEncoding.EncodeToString([]byte("not-a-real-key")),
	)

	_, err := VerifyPassword("anything", hash)
	if !errors.Is(err, ErrIncompatibleVersion) {
		t.Errorf("VerifyPassword() error = %v, want ErrIncompatibleVersion", err)
	}
}
