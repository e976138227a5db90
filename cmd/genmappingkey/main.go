package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"midnightcafe/internal/chain"
	"midnightcafe/internal/files"
)

const (
	privateKeyFile = "mapping_key.asc"
	publicKeyFile  = "mapping_key.pub.asc"
	sealedFile     = "mapping.gpg"
)

func main() {
	outDir := flag.String("out", ".", "Directory for key files")
	name := flag.String("name", "Midnight Café provisioning", "Key owner name")
	email := flag.String("email", "ops@midnight.cafe", "Key owner email")
	bits := flag.Int("bits", 3072, "RSA key size")
	seal := flag.String("seal", "", "Encrypt this plaintext mapping with the public key instead of generating keys")
	flag.Parse()

	var err error
	if *seal != "" {
		err = sealMapping(*outDir, *seal)
	} else {
		err = generate(*outDir, *name, *email, *bits)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generate(dir, name, email string, bits int) error {
	privPath := filepath.Join(dir, privateKeyFile)
	pubPath := filepath.Join(dir, publicKeyFile)
	for _, p := range []string{privPath, pubPath} {
		if files.FileExists(p) {
			return fmt.Errorf("%s already exists. Refusing to overwrite", p)
		}
	}

	key, err := chain.GenerateKey(name, email, bits)
	if err != nil {
		return err
	}
	var priv, pub bytes.Buffer
	if err := chain.WriteArmoredPrivate(&priv, key); err != nil {
		return fmt.Errorf("encode private key: %w", err)
	}
	if err := chain.WriteArmoredPublic(&pub, key); err != nil {
		return fmt.Errorf("encode public key: %w", err)
	}
	if err := os.WriteFile(privPath, priv.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", privPath, err)
	}
	if err := os.WriteFile(pubPath, pub.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", pubPath, err)
	}
	fmt.Printf("Mapping keys written to %s and %s\n", privPath, pubPath)
	return nil
}

func sealMapping(dir, plainPath string) error {
	outPath := filepath.Join(dir, sealedFile)
	if files.FileExists(outPath) {
		return fmt.Errorf("%s already exists. Refusing to overwrite", outPath)
	}

	pf, err := os.Open(filepath.Join(dir, publicKeyFile))
	if err != nil {
		return err
	}
	defer pf.Close()
	recipients, err := chain.ReadKeyring(pf)
	if err != nil {
		return err
	}

	plain, err := os.ReadFile(plainPath)
	if err != nil {
		return err
	}
	if len(chain.ParseMapping(string(plain))) == 0 {
		return fmt.Errorf("%s has no mapping steps", plainPath)
	}

	var sealed bytes.Buffer
	if err := chain.Encrypt(&sealed, recipients, plain); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, sealed.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("Sealed mapping written to %s\n", outPath)
	return nil
}
