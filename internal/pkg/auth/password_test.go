package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestHashPasswordCost(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}
	if cost != passwordHashCost {
		t.Errorf("hash cost = %d, want %d", cost, passwordHashCost)
	}
}

func TestCheckPasswordInvalidHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("CheckPassword() accepted an invalid hash")
	}
}
