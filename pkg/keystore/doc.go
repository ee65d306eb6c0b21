// Package keystore persists ed25519 keypairs as JSON arrays of the 64 secret
// key bytes (seed followed by public key), the format written by
// solana-keygen.
//
// Store manages the single admin credential. It is created once and never
// rotated:
//
//	store, err := keystore.NewStore("admin_keypair.json")
//	if err != nil {
//		return err
//	}
//	admin, err := store.Load()
//	if err != nil {
//		return err
//	}
//	fmt.Println(admin.Address())
//
// UserStore keeps one credential per username under a directory.
package keystore
