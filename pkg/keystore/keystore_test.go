package keystore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mr-tron/base58"
)

func TestStoreCreateLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin_keypair.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := store.Create()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !bytes.Equal(created.SecretKey(), loaded.SecretKey()) {
		t.Fatal("expected secret key to survive a round trip")
	}
	if created.Address() != loaded.Address() {
		t.Fatalf("expected address %s, got %s", created.Address(), loaded.Address())
	}
}

func TestStoreCreateWritesIntegerArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "admin_keypair.json")
	store, _ := NewStore(path)
	keypair, err := store.Create()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if payload[0] != '[' || payload[len(payload)-1] != ']' {
		t.Fatalf("expected a JSON array, got %s", payload)
	}
	secret, err := decodeSecret(payload)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(secret, keypair.SecretKey()) {
		t.Fatal("expected file contents to equal the secret key")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestStoreCreateRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin_keypair.json")
	store, _ := NewStore(path)
	first, err := store.Create()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = store.Create()
	var exists CredentialAlreadyExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected CredentialAlreadyExistsError, got %v", err)
	}
	if exists.Path != path {
		t.Fatalf("expected path %q, got %q", path, exists.Path)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Address() != first.Address() {
		t.Fatal("expected the original credential to be untouched")
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store, _ := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	_, err := store.Load()
	var notFound CredentialNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected CredentialNotFoundError, got %v", err)
	}
	if store.Exists() {
		t.Fatal("expected Exists to be false")
	}
}

func TestStoreLoadRejectsMalformedFiles(t *testing.T) {
	cases := map[string]string{
		"not-json":     "hello",
		"object":       `{"key": 1}`,
		"short":        "[1,2,3]",
		"out-of-range": "[" + repeatNumber("300", 64) + "]",
		"negative":     "[" + repeatNumber("-1", 64) + "]",
	}

	for name, content := range cases {
		path := filepath.Join(t.TempDir(), name+".json")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		store, _ := NewStore(path)
		_, err := store.Load()
		var invalid InvalidKeypairError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: expected InvalidKeypairError, got %v", name, err)
		}
	}
}

func TestNewStoreRequiresPath(t *testing.T) {
	if _, err := NewStore("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestKeypairAddressIsBase58PublicKey(t *testing.T) {
	keypair := NewKeypair()
	decoded, err := base58.Decode(keypair.Address())
	if err != nil {
		t.Fatalf("address is not base58: %v", err)
	}
	if !bytes.Equal(decoded, keypair.PublicKey()) {
		t.Fatal("expected address to decode to the public key")
	}
	if !bytes.Equal(keypair.SecretKey()[32:], keypair.PublicKey()) {
		t.Fatal("expected secret key to end with the public key")
	}
	if !bytes.Equal(keypair.SecretKey()[:32], keypair.Seed()) {
		t.Fatal("expected secret key to start with the seed")
	}
}

func TestKeypairFromSecretWrongLength(t *testing.T) {
	if _, err := KeypairFromSecret(make([]byte, 32)); err == nil {
		t.Fatal("expected error for 32-byte secret")
	}
}

func TestKeypairSecretKeyIsCopy(t *testing.T) {
	keypair := NewKeypair()
	secret := keypair.SecretKey()
	secret[0] ^= 0xff
	if bytes.Equal(secret, keypair.SecretKey()) {
		t.Fatal("expected SecretKey to return a copy")
	}
}

func TestUserStoreCreateLoadList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "users")
	store, err := NewUserStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	usernames, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(usernames) != 0 {
		t.Fatalf("expected empty list for missing dir, got %v", usernames)
	}

	bob, err := store.Create("bob")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := store.Create("alice_01"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	usernames, err = store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(usernames, []string{"alice_01", "bob"}) {
		t.Fatalf("unexpected usernames %v", usernames)
	}

	loaded, err := store.Load("bob")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Address() != bob.Address() {
		t.Fatal("expected loaded user to match created user")
	}
	if !store.Exists("bob") || store.Exists("carol") {
		t.Fatal("unexpected Exists result")
	}

	_, err = store.Create("bob")
	var exists CredentialAlreadyExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected CredentialAlreadyExistsError, got %v", err)
	}

	_, err = store.Load("carol")
	var notFound CredentialNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected CredentialNotFoundError, got %v", err)
	}
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"a", "Bob", "user-1", "under_score", repeatString("x", 64)}
	for _, username := range valid {
		if err := ValidateUsername(username); err != nil {
			t.Fatalf("expected %q to be valid: %v", username, err)
		}
	}

	invalid := []string{"", "../etc", "a b", "x.json", repeatString("x", 65)}
	for _, username := range invalid {
		var invalidErr InvalidUsernameError
		if err := ValidateUsername(username); !errors.As(err, &invalidErr) {
			t.Fatalf("expected %q to be invalid, got %v", username, err)
		}
	}
}

func repeatNumber(value string, count int) string {
	result := value
	for index := 1; index < count; index++ {
		result += "," + value
	}
	return result
}

func repeatString(value string, count int) string {
	result := ""
	for index := 0; index < count; index++ {
		result += value
	}
	return result
}
