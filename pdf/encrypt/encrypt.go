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

// Package encrypt implements the PDF Standard Security Handler
// (PDF 32000-1:2008 §7.6.3, ISO 32000-2 §7.6.4) for revisions 2
// through 6: RC4 40/128-bit (V=1,2), crypt-filter RC4/AES-128 (V=4)
// and AES-256 (V=5). A Handler is a strategy object plugged into
// pdf/object's resolution path via the object.Decryptor interface; the
// object layer never knows which algorithm is underneath.
package encrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rc4"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"github.com/wordengine/docflow/pdf/object"
)

// ErrWrongPassword is returned by New when neither the user nor the
// owner authentication algorithm accepts the supplied password.
var ErrWrongPassword = fmt.Errorf("encrypt: password does not match document")

// passwordPad is the 32-byte padding string of §7.6.3.3 Algorithm 2.
var passwordPad = []byte{
	0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41,
	0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
	0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80,
	0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
}

// aesSalt is appended to the per-object key input when the crypt
// filter is AES (§7.6.2 Algorithm 1 step b).
var aesSalt = []byte{0x73, 0x41, 0x6C, 0x54} // "sAlT"

type cryptMethod int

const (
	methodIdentity cryptMethod = iota
	methodRC4
	methodAESV2 // AES-128-CBC
	methodAESV3 // AES-256-CBC
)

// Handler holds the authenticated file encryption key and the crypt
// methods selected for streams and strings. It implements
// object.Decryptor.
type Handler struct {
	v, r int
	key  []byte

	stmMethod cryptMethod
	strMethod cryptMethod
}

var _ object.Decryptor = (*Handler)(nil)

// New authenticates password against the /Encrypt dictionary enc and
// returns a Handler holding the derived file encryption key. fileID is
// the first element of the trailer's /ID array (empty is tolerated;
// some producers omit it). The user password is tried first, then the
// owner password.
func New(enc object.Dict, fileID string, password string) (*Handler, error) {
	if enc.GetName("Filter") != "Standard" {
		return nil, fmt.Errorf("encrypt: unsupported security handler %q", enc.GetName("Filter"))
	}
	v := enc.GetInt("V")
	r := enc.GetInt("R")

	h := &Handler{v: v, r: r}
	switch v {
	case 1, 2:
		h.stmMethod = methodRC4
		h.strMethod = methodRC4
	case 4, 5:
		var err error
		h.stmMethod, h.strMethod, err = cryptFilterMethods(enc)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("encrypt: unsupported encryption version V=%d", v)
	}

	var err error
	switch {
	case r >= 2 && r <= 4:
		h.key, err = authenticateR234(enc, []byte(fileID), []byte(password))
	case r == 5 || r == 6:
		h.key, err = authenticateR56(enc, r, []byte(password))
	default:
		return nil, fmt.Errorf("encrypt: unsupported revision R=%d", r)
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

// cryptFilterMethods maps /StmF and /StrF through the /CF dictionary
// to concrete crypt methods (§7.6.5).
func cryptFilterMethods(enc object.Dict) (stm, str cryptMethod, err error) {
	lookup := func(filterName object.Name) (cryptMethod, error) {
		if filterName == "" || filterName == "Identity" {
			return methodIdentity, nil
		}
		cf := enc.GetDict("CF")
		fd := cf.GetDict(filterName)
		if fd == nil {
			return methodIdentity, fmt.Errorf("encrypt: crypt filter %s not defined in /CF", filterName)
		}
		switch fd.GetName("CFM") {
		case "V2":
			return methodRC4, nil
		case "AESV2":
			return methodAESV2, nil
		case "AESV3":
			return methodAESV3, nil
		case "None", "":
			return methodIdentity, nil
		default:
			return methodIdentity, fmt.Errorf("encrypt: unsupported crypt method %s", fd.GetName("CFM"))
		}
	}

	stmName := enc.GetName("StmF")
	strName := enc.GetName("StrF")
	if stm, err = lookup(stmName); err != nil {
		return
	}
	str, err = lookup(strName)
	return
}

func dictString(d object.Dict, key object.Name) []byte {
	if s, ok := d[key].(string); ok {
		return []byte(s)
	}
	return nil
}

// pad truncates or pads password to exactly 32 bytes using the
// standard padding string (Algorithm 2 step a).
func pad(password []byte) []byte {
	out := make([]byte, 32)
	n := copy(out, password)
	copy(out[n:], passwordPad)
	return out
}

// fileKeyR234 is Algorithm 2: derive the file encryption key from an
// already-padded password.
func fileKeyR234(padded, o []byte, p int32, fileID []byte, r, keyLen int, encryptMetadata bool) []byte {
	h := md5.New()
	h.Write(padded)
	h.Write(o[:32])
	h.Write([]byte{byte(p), byte(p >> 8), byte(p >> 16), byte(p >> 24)})
	h.Write(fileID)
	if r >= 4 && !encryptMetadata {
		h.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	}
	sum := h.Sum(nil)
	if r >= 3 {
		for i := 0; i < 50; i++ {
			s := md5.Sum(sum[:keyLen])
			sum = s[:]
		}
	}
	key := make([]byte, keyLen)
	copy(key, sum)
	return key
}

// userValue is Algorithm 4 (R=2) / Algorithm 5 (R>=3): the /U entry a
// conforming writer stores for a given file key.
func userValue(key, fileID []byte, r int) []byte {
	if r == 2 {
		return rc4Apply(key, passwordPad)
	}
	h := md5.New()
	h.Write(passwordPad)
	h.Write(fileID)
	sum := h.Sum(nil)
	out := rc4Apply(key, sum)
	for i := 1; i <= 19; i++ {
		out = rc4Apply(xorKey(key, byte(i)), out)
	}
	// The remaining 16 bytes of a 32-byte /U are arbitrary padding;
	// comparison uses only the first 16.
	return out
}

// ownerUserPassword is Algorithm 7's core: recover the padded user
// password from /O using the owner password.
func ownerUserPassword(ownerPassword, o []byte, r, keyLen int) []byte {
	sum := md5.Sum(pad(ownerPassword))
	key := sum[:]
	if r >= 3 {
		for i := 0; i < 50; i++ {
			s := md5.Sum(key[:keyLen])
			key = s[:]
		}
	}
	key = key[:keyLen]

	up := make([]byte, 32)
	copy(up, o[:32])
	if r == 2 {
		return rc4Apply(key, up)
	}
	for i := 19; i >= 0; i-- {
		up = rc4Apply(xorKey(key, byte(i)), up)
	}
	return up
}

func authenticateR234(enc object.Dict, fileID, password []byte) ([]byte, error) {
	o := dictString(enc, "O")
	u := dictString(enc, "U")
	if len(o) < 32 || len(u) < 16 {
		return nil, fmt.Errorf("encrypt: malformed /O or /U entry")
	}
	r := enc.GetInt("R")
	p := int32(enc.GetInt("P"))
	lengthBits := enc.GetInt("Length")
	if lengthBits == 0 {
		lengthBits = 40
	}
	keyLen := lengthBits / 8
	encMeta := true
	if v, ok := enc["EncryptMetadata"].(bool); ok {
		encMeta = v
	}

	check := func(padded []byte) []byte {
		key := fileKeyR234(padded, o, p, fileID, r, keyLen, encMeta)
		expect := userValue(key, fileID, r)
		n := 32
		if r >= 3 {
			n = 16
		}
		if string(expect[:n]) == string(u[:n]) {
			return key
		}
		return nil
	}

	if key := check(pad(password)); key != nil {
		return key, nil
	}
	if key := check(ownerUserPassword(password, o, r, keyLen)); key != nil {
		return key, nil
	}
	return nil, ErrWrongPassword
}

// authenticateR56 is Algorithm 11/12 (password check) plus the
// /UE // /OE key unwrap for AES-256 encryption (R=5 legacy AESV3 and
// the ISO 32000-2 R=6 hardened variant).
func authenticateR56(enc object.Dict, r int, password []byte) ([]byte, error) {
	u := dictString(enc, "U")
	o := dictString(enc, "O")
	ue := dictString(enc, "UE")
	oe := dictString(enc, "OE")
	if len(u) < 48 || len(o) < 48 {
		return nil, fmt.Errorf("encrypt: malformed /U or /O entry")
	}
	if len(password) > 127 {
		password = password[:127]
	}

	hash := func(pw, salt, udata []byte) []byte {
		if r == 5 {
			h := sha256.New()
			h.Write(pw)
			h.Write(salt)
			h.Write(udata)
			return h.Sum(nil)
		}
		return hash2B(pw, salt, udata)
	}

	// User password: validation salt U[32:40], key salt U[40:48].
	if string(hash(password, u[32:40], nil)) == string(u[:32]) {
		if len(ue) < 32 {
			return nil, fmt.Errorf("encrypt: missing /UE entry")
		}
		intermediate := hash(password, u[40:48], nil)
		return aesCBCNoPad(intermediate, make([]byte, 16), ue[:32], false)
	}

	// Owner password: salts from /O, with the full 48-byte /U as
	// additional hash input.
	if string(hash(password, o[32:40], u[:48])) == string(o[:32]) {
		if len(oe) < 32 {
			return nil, fmt.Errorf("encrypt: missing /OE entry")
		}
		intermediate := hash(password, o[40:48], u[:48])
		return aesCBCNoPad(intermediate, make([]byte, 16), oe[:32], false)
	}

	return nil, ErrWrongPassword
}

// hash2B is ISO 32000-2 Algorithm 2.B, the hardened hash used by R=6:
// an iterated SHA-256/384/512 selection driven by an AES-128-CBC
// encryption of the repeated password block.
func hash2B(password, salt, udata []byte) []byte {
	h := sha256.New()
	h.Write(password)
	h.Write(salt)
	h.Write(udata)
	k := h.Sum(nil)

	for i := 0; ; i++ {
		block := make([]byte, 0, len(password)+len(k)+len(udata))
		block = append(block, password...)
		block = append(block, k...)
		block = append(block, udata...)
		k1 := make([]byte, 0, len(block)*64)
		for j := 0; j < 64; j++ {
			k1 = append(k1, block...)
		}

		e, _ := aesCBCNoPad(k[:16], k[16:32], k1, true)

		mod := 0
		for _, b := range e[:16] {
			mod += int(b)
		}
		switch mod % 3 {
		case 0:
			s := sha256.Sum256(e)
			k = s[:]
		case 1:
			s := sha512.Sum384(e)
			k = s[:]
		case 2:
			s := sha512.Sum512(e)
			k = s[:]
		}

		if i >= 63 && int(e[len(e)-1]) <= i-31 {
			break
		}
	}
	return k[:32]
}

// objectKey is Algorithm 1: the per-object key for V<5 encryption.
// For V=5 the file key is used directly and this is never called.
func (h *Handler) objectKey(num, gen int, aesFilter bool) []byte {
	input := make([]byte, 0, len(h.key)+9)
	input = append(input, h.key...)
	input = append(input, byte(num), byte(num>>8), byte(num>>16))
	input = append(input, byte(gen), byte(gen>>8))
	if aesFilter {
		input = append(input, aesSalt...)
	}
	sum := md5.Sum(input)
	n := len(h.key) + 5
	if n > 16 {
		n = 16
	}
	return sum[:n]
}

func (h *Handler) decrypt(method cryptMethod, num, gen int, data []byte) ([]byte, error) {
	switch method {
	case methodIdentity:
		return data, nil
	case methodRC4:
		return rc4Apply(h.objectKey(num, gen, false), data), nil
	case methodAESV2:
		return aesCBCDecryptPadded(h.objectKey(num, gen, true), data)
	case methodAESV3:
		return aesCBCDecryptPadded(h.key, data)
	default:
		return nil, fmt.Errorf("encrypt: unknown crypt method")
	}
}

// DecryptString implements object.Decryptor.
func (h *Handler) DecryptString(num, gen int, s string) (string, error) {
	out, err := h.decrypt(h.strMethod, num, gen, []byte(s))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecryptStream implements object.Decryptor.
func (h *Handler) DecryptStream(num, gen int, raw []byte) ([]byte, error) {
	return h.decrypt(h.stmMethod, num, gen, raw)
}

func rc4Apply(key, data []byte) []byte {
	c, err := rc4.NewCipher(key)
	if err != nil {
		return data
	}
	out := make([]byte, len(data))
	c.XORKeyStream(out, data)
	return out
}

func xorKey(key []byte, b byte) []byte {
	out := make([]byte, len(key))
	for i, k := range key {
		out[i] = k ^ b
	}
	return out
}

// aesCBCNoPad runs AES-CBC without padding in either direction; data
// whose length is not a block multiple has the trailing fragment
// passed through untouched (tolerated rather than rejected, matching
// the lenient read posture of the rest of the reader).
func aesCBCNoPad(key, iv, data []byte, encryptDir bool) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	n := len(data) / aes.BlockSize * aes.BlockSize
	out := make([]byte, len(data))
	if n > 0 {
		var mode cipher.BlockMode
		if encryptDir {
			mode = cipher.NewCBCEncrypter(block, iv)
		} else {
			mode = cipher.NewCBCDecrypter(block, iv)
		}
		mode.CryptBlocks(out[:n], data[:n])
	}
	copy(out[n:], data[n:])
	return out, nil
}

// aesCBCDecryptPadded decrypts AES-CBC data whose first 16 bytes are
// the IV, stripping PKCS#7 padding when it is well formed.
func aesCBCDecryptPadded(key, data []byte) ([]byte, error) {
	if len(data) < aes.BlockSize {
		return nil, fmt.Errorf("encrypt: AES payload shorter than IV")
	}
	iv := data[:aes.BlockSize]
	out, err := aesCBCNoPad(key, iv, data[aes.BlockSize:], false)
	if err != nil {
		return nil, err
	}
	if len(out) > 0 {
		p := int(out[len(out)-1])
		if p >= 1 && p <= aes.BlockSize && p <= len(out) {
			out = out[:len(out)-p]
		}
	}
	return out, nil
}
