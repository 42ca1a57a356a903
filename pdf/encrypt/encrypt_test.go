/*
MIT License

Copyright (c) 2025 Misael Monterroca

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package encrypt

import (
	"bytes"
	"crypto/md5"
	"errors"
	"testing"

	"github.com/wordengine/docflow/pdf/object"
)

// buildR3Dict constructs a V=2 R=3 128-bit /Encrypt dictionary by
// running the writer-side algorithms (3 and 4/5) forward, so the
// handler under test is authenticated against values derived from the
// same primitives rather than opaque fixtures.
func buildR3Dict(t *testing.T, userPw, ownerPw string, p int32, fileID []byte) (object.Dict, []byte) {
	t.Helper()
	const keyLen = 16

	// Algorithm 3: /O from the owner password.
	sum := md5.Sum(pad([]byte(ownerPw)))
	rc4key := sum[:]
	for i := 0; i < 50; i++ {
		s := md5.Sum(rc4key[:keyLen])
		rc4key = s[:]
	}
	rc4key = rc4key[:keyLen]
	o := rc4Apply(rc4key, pad([]byte(userPw)))
	for i := 1; i <= 19; i++ {
		o = rc4Apply(xorKey(rc4key, byte(i)), o)
	}

	// Algorithm 2: the file key; Algorithm 5: /U.
	key := fileKeyR234(pad([]byte(userPw)), o, p, fileID, 3, keyLen, true)
	u := make([]byte, 32)
	copy(u, userValue(key, fileID, 3))

	return object.Dict{
		"Filter": object.Name("Standard"),
		"V":      int64(2),
		"R":      int64(3),
		"Length": int64(128),
		"P":      int64(p),
		"O":      string(o),
		"U":      string(u),
	}, key
}

func TestR3UserAndOwnerAuthentication(t *testing.T) {
	fileID := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04}
	enc, wantKey := buildR3Dict(t, "user-secret", "owner-secret", -44, fileID)

	h, err := New(enc, string(fileID), "user-secret")
	if err != nil {
		t.Fatalf("user password rejected: %v", err)
	}
	if !bytes.Equal(h.key, wantKey) {
		t.Fatalf("user auth derived key %x, want %x", h.key, wantKey)
	}

	h2, err := New(enc, string(fileID), "owner-secret")
	if err != nil {
		t.Fatalf("owner password rejected: %v", err)
	}
	if !bytes.Equal(h2.key, wantKey) {
		t.Fatalf("owner auth derived key %x, want %x", h2.key, wantKey)
	}

	if _, err := New(enc, string(fileID), "wrong"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("wrong password: got %v, want ErrWrongPassword", err)
	}
}

func TestR3ObjectDecryptionRoundTrip(t *testing.T) {
	fileID := []byte{9, 8, 7, 6, 5, 4, 3, 2}
	enc, _ := buildR3Dict(t, "pw", "owner", -1, fileID)
	h, err := New(enc, string(fileID), "pw")
	if err != nil {
		t.Fatal(err)
	}

	plain := "per-object payload"
	cipher := rc4Apply(h.objectKey(7, 0, false), []byte(plain))
	got, err := h.DecryptString(7, 0, string(cipher))
	if err != nil {
		t.Fatal(err)
	}
	if got != plain {
		t.Fatalf("DecryptString = %q, want %q", got, plain)
	}

	// A different object number must not decrypt to the same plaintext.
	other, _ := h.DecryptString(8, 0, string(cipher))
	if other == plain {
		t.Fatal("object 8 key unexpectedly matched object 7")
	}
}

// buildR6Dict constructs a V=5 R=6 AES-256 dictionary forward from a
// chosen file key.
func buildR6Dict(t *testing.T, userPw, ownerPw string, fileKey []byte) object.Dict {
	t.Helper()
	uvSalt := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	ukSalt := []byte{8, 7, 6, 5, 4, 3, 2, 1}

	uHash := hash2B([]byte(userPw), uvSalt, nil)
	u := append(append(append([]byte{}, uHash...), uvSalt...), ukSalt...)
	uInter := hash2B([]byte(userPw), ukSalt, nil)
	ue, err := aesCBCNoPad(uInter, make([]byte, 16), fileKey, true)
	if err != nil {
		t.Fatal(err)
	}

	ovSalt := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	okSalt := []byte{80, 70, 60, 50, 40, 30, 20, 10}
	oHash := hash2B([]byte(ownerPw), ovSalt, u)
	o := append(append(append([]byte{}, oHash...), ovSalt...), okSalt...)
	oInter := hash2B([]byte(ownerPw), okSalt, u)
	oe, err := aesCBCNoPad(oInter, make([]byte, 16), fileKey, true)
	if err != nil {
		t.Fatal(err)
	}

	return object.Dict{
		"Filter": object.Name("Standard"),
		"V":      int64(5),
		"R":      int64(6),
		"Length": int64(256),
		"O":      string(o),
		"U":      string(u),
		"OE":     string(oe),
		"UE":     string(ue),
		"CF": object.Dict{
			"StdCF": object.Dict{"CFM": object.Name("AESV3")},
		},
		"StmF": object.Name("StdCF"),
		"StrF": object.Name("StdCF"),
	}
}

func TestR6AES256Authentication(t *testing.T) {
	fileKey := bytes.Repeat([]byte{0xA5, 0x5A}, 16)
	enc := buildR6Dict(t, "aes-user", "aes-owner", fileKey)

	h, err := New(enc, "", "aes-user")
	if err != nil {
		t.Fatalf("user password rejected: %v", err)
	}
	if !bytes.Equal(h.key, fileKey) {
		t.Fatalf("unwrapped key %x, want %x", h.key, fileKey)
	}

	h2, err := New(enc, "", "aes-owner")
	if err != nil {
		t.Fatalf("owner password rejected: %v", err)
	}
	if !bytes.Equal(h2.key, fileKey) {
		t.Fatalf("owner unwrapped key %x, want %x", h2.key, fileKey)
	}

	if _, err := New(enc, "", "nope"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("wrong password: got %v, want ErrWrongPassword", err)
	}
}

func TestR6StreamDecryption(t *testing.T) {
	fileKey := bytes.Repeat([]byte{0x42}, 32)
	enc := buildR6Dict(t, "u", "o", fileKey)
	h, err := New(enc, "", "u")
	if err != nil {
		t.Fatal(err)
	}

	plain := []byte("stream body, AES-256 all objects share the file key")
	iv := bytes.Repeat([]byte{0x11}, 16)
	padLen := 16 - len(plain)%16
	padded := append(append([]byte{}, plain...), bytes.Repeat([]byte{byte(padLen)}, padLen)...)
	body, err := aesCBCNoPad(fileKey, iv, padded, true)
	if err != nil {
		t.Fatal(err)
	}
	payload := append(append([]byte{}, iv...), body...)

	got, err := h.DecryptStream(12, 0, payload)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("DecryptStream = %q, want %q", got, plain)
	}
}

func TestIdentityCryptFilterPassesThrough(t *testing.T) {
	fileKey := bytes.Repeat([]byte{0x42}, 32)
	enc := buildR6Dict(t, "u", "o", fileKey)
	enc["StrF"] = object.Name("Identity")
	h, err := New(enc, "", "u")
	if err != nil {
		t.Fatal(err)
	}
	got, err := h.DecryptString(3, 0, "not actually encrypted")
	if err != nil {
		t.Fatal(err)
	}
	if got != "not actually encrypted" {
		t.Fatalf("Identity filter altered the string: %q", got)
	}
}

func TestUnsupportedVersionRejected(t *testing.T) {
	enc := object.Dict{"Filter": object.Name("Standard"), "V": int64(3), "R": int64(3)}
	if _, err := New(enc, "", ""); err == nil {
		t.Fatal("V=3 should be rejected")
	}
}
