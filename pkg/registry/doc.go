// Package registry keeps the local list of brand token mints created by the
// toolkit. The registry is a pretty-printed JSON array of MintRecord values
// that only ever grows: records are appended in creation order and never
// updated or removed.
//
//	reg, err := registry.New("brand_mints.json")
//	if err != nil {
//		return err
//	}
//	err = reg.Append(registry.MintRecord{
//		Address: mintAddress,
//		Name:    "Coffee Club",
//		Symbol:  "CAFE",
//	})
//
// Each append rewrites the whole file through a temporary file and a rename,
// so a crash cannot leave a truncated registry. Two processes appending at
// the same time can still lose one of the records.
package registry
