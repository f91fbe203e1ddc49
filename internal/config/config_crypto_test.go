package config_test

import (
	"os"
	"testing"

	"github.com/kabore-dev/prepa-concours/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	os.Setenv("CRYPTO_KEY", "cle_trop_courte")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("InitCrypto aurait dû paniquer avec une clé trop courte, mais ne l'a pas fait.")
		}
	}()

	config.InitCrypto()
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("PhoneNumber", func(t *testing.T) {
		plaintext := "+226 70 12 34 56"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt a échoué: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt a échoué: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("Le texte déchiffré ('%s') ne correspond pas à l'original ('%s')",
				decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("Le chiffrement n'est pas aléatoire (nonce). Les textes chiffrés devraient différer.")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt a échoué: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt a échoué: %v", err)
		}
		if decrypted != "" {
			t.Errorf("Le texte déchiffré vide est incorrect: '%s'", decrypted)
		}
	})
}
