package main

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := hashPassword("correct horse", nil)
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Errorf("unexpected encoding: %s", hash)
	}

	ok, err := verifyPassword("correct horse", hash)
	if err != nil || !ok {
		t.Errorf("verify correct password: ok=%v err=%v", ok, err)
	}
	ok, err = verifyPassword("battery staple", hash)
	if err != nil || ok {
		t.Errorf("verify wrong password: ok=%v err=%v", ok, err)
	}
}

func TestHashPasswordSalted(t *testing.T) {
	a, _ := hashPassword("same", nil)
	b, _ := hashPassword("same", nil)
	if a == b {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	for _, h := range []string{
		"",
		"plain",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=1$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
	} {
		if _, err := verifyPassword("pw", h); err == nil {
			t.Errorf("expected error for %q", h)
		}
	}
}
