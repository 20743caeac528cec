package password

import (
	"strings"
	"testing"
)

func TestEncodeDirect_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := New(SchemeBcrypt)
	hash, err := codec.Encode("StrongPassw0rd!")
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if strings.HasPrefix(hash, preDigestTag) || strings.HasPrefix(hash, fallbackTag) {
		t.Fatalf("short plaintext should use the direct strategy, got %q", hash)
	}
	if !codec.Verify("StrongPassw0rd!", hash) {
		t.Fatalf("Verify failed for own plaintext")
	}
	if codec.Verify("wrong-password!", hash) {
		t.Fatalf("Verify succeeded for wrong plaintext")
	}
}

func TestEncodeLong_UsesPreDigest(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 100)
	codec := New(SchemeBcrypt)
	hash, err := codec.Encode(long)
	if err != nil {
		t.Fatalf("Encode error for %d-byte plaintext: %v", len(long), err)
	}
	if !strings.HasPrefix(hash, preDigestTag) {
		t.Fatalf("long plaintext should carry the pre-digest tag, got %q", hash)
	}
	if !codec.Verify(long, hash) {
		t.Fatalf("Verify failed for own plaintext")
	}
	if codec.Verify(strings.Repeat("a", 99), hash) {
		t.Fatalf("Verify succeeded for different long plaintext")
	}
}

func TestEncodeAtLimit_StaysDirect(t *testing.T) {
	t.Parallel()

	pw := strings.Repeat("x", bcryptMaxBytes)
	codec := New(SchemeBcrypt)
	hash, err := codec.Encode(pw)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if strings.HasPrefix(hash, preDigestTag) {
		t.Fatalf("72-byte plaintext should use the direct strategy")
	}
	if !codec.Verify(pw, hash) {
		t.Fatalf("Verify failed at the length limit")
	}
}

func TestFallbackScheme(t *testing.T) {
	t.Parallel()

	codec := New(SchemeSHA256)
	hash, err := codec.Encode("hunter2hunter2")
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !strings.HasPrefix(hash, fallbackTag) {
		t.Fatalf("fallback hash missing tag, got %q", hash)
	}
	if !codec.Verify("hunter2hunter2", hash) {
		t.Fatalf("Verify failed for own plaintext")
	}
	if codec.Verify("hunter3hunter3", hash) {
		t.Fatalf("Verify succeeded for wrong plaintext")
	}

	// A bcrypt-configured codec must still verify fallback hashes.
	if !New(SchemeBcrypt).Verify("hunter2hunter2", hash) {
		t.Fatalf("bcrypt codec rejected a historical fallback hash")
	}
}

func TestStrategiesDoNotCross(t *testing.T) {
	t.Parallel()

	codec := New(SchemeBcrypt)
	direct, err := codec.Encode("correct horse")
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	// Relabeling a hash with another strategy's tag must never verify.
	if codec.Verify("correct horse", fallbackTag+direct) {
		t.Fatalf("direct hash verified through the fallback path")
	}
	if codec.Verify("correct horse", preDigestTag+direct) {
		t.Fatalf("direct hash verified through the pre-digest path")
	}
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	codec := New(SchemeBcrypt)
	for _, encoded := range []string{
		"",
		"garbage",
		"$2a$not-a-real-hash",
		"sha256$",
		"sha256$saltonly",
		"sha256$$",
		"bcrypt-sha256$",
		"bcrypt-sha256$nonsense",
	} {
		if codec.Verify("anything", encoded) {
			t.Fatalf("Verify succeeded for malformed hash %q", encoded)
		}
	}
}
