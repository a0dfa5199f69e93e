package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
)

const rsaKeyBits = 2048

var errKeysRequired = errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set in production")

// signingKeys decodes the base64 PEM key pair from the environment. Outside
// production a missing pair is replaced by a fresh one, so sessions do not
// survive a restart.
func signingKeys(privateB64, publicB64 string, production bool) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if privateB64 == "" || publicB64 == "" {
		if production {
			return nil, nil, errKeysRequired
		}
		log.Println("JWT keys not configured; generating an ephemeral RSA keypair")
		return GenerateRSAKeyPair()
	}

	privatePEM, err := base64.StdEncoding.DecodeString(privateB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}
	publicPEM, err := base64.StdEncoding.DecodeString(publicB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	priv, err := parsePrivateKey(privatePEM)
	if err != nil {
		return nil, nil, err
	}
	pub, err := parsePublicKey(publicPEM)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// GenerateRSAKeyPair returns a new 2048-bit key pair.
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	priv, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}
	return priv, &priv.PublicKey, nil
}

func pemBlock(data []byte, what string) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%s: no PEM block found", what)
	}
	return block, nil
}

// parsePrivateKey accepts PKCS#1 and PKCS#8 encodings.
func parsePrivateKey(data []byte) (*rsa.PrivateKey, error) {
	block, err := pemBlock(data, "private key")
	if err != nil {
		return nil, err
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is %T, not RSA", parsed)
	}
	return key, nil
}

func parsePublicKey(data []byte) (*rsa.PublicKey, error) {
	block, err := pemBlock(data, "public key")
	if err != nil {
		return nil, err
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is %T, not RSA", parsed)
	}
	return key, nil
}
