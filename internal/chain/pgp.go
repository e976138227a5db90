package chain

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
	"golang.org/x/crypto/openpgp/packet"
	_ "golang.org/x/crypto/ripemd160"
)

const armorPrefix = "-----BEGIN "

// ErrKeyLocked is returned when the mapping key needs a passphrase that was
// not supplied or did not unlock it.
var ErrKeyLocked = errors.New("mapping key is locked")

// MappingSource yields the decrypted mapping text.
type MappingSource interface {
	Mapping() (string, error)
}

// PGPMapping is an OpenPGP-encrypted mapping file decrypted with a secret
// keyring on disk.
type PGPMapping struct {
	Path        string
	KeyringPath string
	Passphrase  string
}

func (m PGPMapping) Mapping() (string, error) {
	kf, err := os.Open(m.KeyringPath)
	if err != nil {
		return "", fmt.Errorf("open keyring: %w", err)
	}
	defer kf.Close()
	keyring, err := ReadKeyring(kf)
	if err != nil {
		return "", err
	}

	f, err := os.Open(m.Path)
	if err != nil {
		return "", fmt.Errorf("open mapping: %w", err)
	}
	defer f.Close()
	return Decrypt(f, keyring, m.Passphrase)
}

// ReadKeyring reads an armored or binary keyring.
func ReadKeyring(r io.Reader) (openpgp.EntityList, error) {
	br := bufio.NewReader(r)
	var (
		keyring openpgp.EntityList
		err     error
	)
	if isArmored(br) {
		keyring, err = openpgp.ReadArmoredKeyRing(br)
	} else {
		keyring, err = openpgp.ReadKeyRing(br)
	}
	if err != nil {
		return nil, fmt.Errorf("read keyring: %w", err)
	}
	return keyring, nil
}

// Decrypt decrypts an armored or binary OpenPGP message with keyring. Any
// signature on the message is not checked.
func Decrypt(r io.Reader, keyring openpgp.KeyRing, passphrase string) (string, error) {
	br := bufio.NewReader(r)
	var body io.Reader = br
	if isArmored(br) {
		block, err := armor.Decode(br)
		if err != nil {
			return "", fmt.Errorf("decode armor: %w", err)
		}
		body = block.Body
	}

	md, err := openpgp.ReadMessage(body, keyring, unlockPrompt(passphrase), nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}
	data, err := io.ReadAll(md.UnverifiedBody)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}
	return string(data), nil
}

// decryptKey unlocks a single private key. Tests replace it.
var decryptKey = func(pk *packet.PrivateKey, passphrase []byte) error {
	return pk.Decrypt(passphrase)
}

// unlockPrompt unlocks the candidate keys with passphrase once. A failed
// unlock, a missing passphrase or a second request all end in ErrKeyLocked.
func unlockPrompt(passphrase string) openpgp.PromptFunction {
	prompted := false
	return func(keys []openpgp.Key, symmetric bool) ([]byte, error) {
		if prompted || passphrase == "" {
			return nil, ErrKeyLocked
		}
		prompted = true
		for _, k := range keys {
			if k.PrivateKey == nil || !k.PrivateKey.Encrypted {
				continue
			}
			if err := decryptKey(k.PrivateKey, []byte(passphrase)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrKeyLocked, err)
			}
		}
		return []byte(passphrase), nil
	}
}

// Encrypt seals plaintext for every entity in to, armored.
func Encrypt(w io.Writer, to openpgp.EntityList, plaintext []byte) error {
	aw, err := armor.Encode(w, "PGP MESSAGE", nil)
	if err != nil {
		return err
	}
	pw, err := openpgp.Encrypt(aw, to, nil, &openpgp.FileHints{IsBinary: false}, nil)
	if err != nil {
		aw.Close()
		return fmt.Errorf("encrypt mapping: %w", err)
	}
	if _, err := pw.Write(plaintext); err != nil {
		pw.Close()
		aw.Close()
		return err
	}
	if err := pw.Close(); err != nil {
		aw.Close()
		return err
	}
	return aw.Close()
}

// GenerateKey creates a new signing and encryption key pair.
func GenerateKey(name, email string, bits int) (*openpgp.Entity, error) {
	e, err := openpgp.NewEntity(name, "mapping", email, &packet.Config{RSABits: bits})
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return e, nil
}

// WriteArmoredPrivate writes e's secret keyring, armored.
func WriteArmoredPrivate(w io.Writer, e *openpgp.Entity) error {
	aw, err := armor.Encode(w, openpgp.PrivateKeyType, nil)
	if err != nil {
		return err
	}
	if err := e.SerializePrivate(aw, nil); err != nil {
		aw.Close()
		return err
	}
	return aw.Close()
}

// WriteArmoredPublic writes e's public keyring, armored.
func WriteArmoredPublic(w io.Writer, e *openpgp.Entity) error {
	aw, err := armor.Encode(w, openpgp.PublicKeyType, nil)
	if err != nil {
		return err
	}
	if err := e.Serialize(aw); err != nil {
		aw.Close()
		return err
	}
	return aw.Close()
}

func isArmored(br *bufio.Reader) bool {
	peek, _ := br.Peek(64)
	return bytes.HasPrefix(bytes.TrimLeft(peek, " \t\r\n"), []byte(armorPrefix))
}
