package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("open sesame", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "open sesame" {
		t.Fatal("password stored in the clear")
	}
	if !VerifyPassword(hash, "open sesame") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "open says me") {
		t.Error("wrong password accepted")
	}
	if VerifyPassword("not a bcrypt hash", "open sesame") {
		t.Error("bogus hash accepted")
	}
}
