package cache

import (
	"crypto/rand"
	"errors"

	"github.com/denisbrodbeck/machineid"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// ErrDecrypt is returned when the file bytes are not a valid sealed
// cache: wrong secret, truncation or plain tampering.
var ErrDecrypt = errors.New("cannot decrypt cache file")

const (
	// File layout is magic || salt || nonce || AEAD ciphertext.
	cryptoMagic = "PIPC\x01"

	saltSize = 16

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

func deriveKey(secret, salt []byte) ([]byte, error) {
	return scrypt.Key(secret, salt, scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
}

func encrypt(secret, plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	key, err := deriveKey(secret, salt)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	rv := make([]byte, 0, len(cryptoMagic)+len(salt)+len(nonce)+len(plaintext)+aead.Overhead())
	rv = append(rv, cryptoMagic...)
	rv = append(rv, salt...)
	rv = append(rv, nonce...)

	return aead.Seal(rv, nonce, plaintext, nil), nil
}

func decrypt(secret, data []byte) ([]byte, error) {
	if len(data) < len(cryptoMagic)+saltSize+chacha20poly1305.NonceSizeX ||
		string(data[:len(cryptoMagic)]) != cryptoMagic {
		return nil, ErrDecrypt
	}

	data = data[len(cryptoMagic):]
	salt, data := data[:saltSize], data[saltSize:]
	nonce, ciphertext := data[:chacha20poly1305.NonceSizeX], data[chacha20poly1305.NonceSizeX:]

	key, err := deriveKey(secret, salt)
	if err != nil {
		return nil, ErrDecrypt
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, ErrDecrypt
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}

	return plaintext, nil
}

// MachineSecret returns a secret bound to this machine and this
// application, suitable for WithEncryptionSecret. The cache file
// becomes unreadable when copied to another host.
func MachineSecret() ([]byte, error) {
	id, err := machineid.ProtectedID(cacheDirName)
	if err != nil {
		return nil, err
	}

	return []byte(id), nil
}
