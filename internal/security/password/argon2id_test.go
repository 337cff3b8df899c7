package password

import (
	"strings"
	"testing"
)

// Costos bajos para que la suite corra rápido.
var testParams = Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, KeyLen: 32}

func TestHashAndVerify(t *testing.T) {
	phc, err := HashWithParams(testParams, "correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(phc, "$argon2id$v=19$") {
		t.Fatalf("unexpected PHC format: %q", phc)
	}
	if !Verify("correct horse battery staple", phc) {
		t.Fatal("expected correct password to verify")
	}
	if Verify("wrong password", phc) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	a, err := HashWithParams(testParams, "same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := HashWithParams(testParams, "same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
	if !Verify("same-input", a) || !Verify("same-input", b) {
		t.Fatal("both hashes must verify")
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	if _, err := HashWithParams(testParams, ""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestVerify_MalformedPHC(t *testing.T) {
	malformed := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=8192,t=1,p=1$onlyfourparts",
		"$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$ZGs",    // algoritmo distinto
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$ZGs",  // versión distinta
		"$argon2id$v=19$memory=8192$c2FsdA$ZGs",     // params ilegibles
		"$argon2id$v=19$m=8192,t=1,p=1$!!notb64$ZGs", // salt corrupto
	}
	for _, phc := range malformed {
		if Verify("whatever", phc) {
			t.Fatalf("expected malformed hash to fail: %q", phc)
		}
	}
}

func TestHasher_ImplementsRoundTrip(t *testing.T) {
	h := Hasher{Params: testParams}
	phc, err := h.Hash("pw-123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !h.Verify("pw-123456", phc) {
		t.Fatal("hasher round trip failed")
	}
}
