package identity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// CSIDInput carries the identifying fields of one product variant. All fields
// are optional except that brand/model name back the hash fallback.
type CSIDInput struct {
	GTIN      string
	MPN       string
	Brand     string
	ModelName string
	Size      string
	Colour    string
}

// ResolveCSID derives the canonical, retailer-agnostic identity of a variant.
// Priority reflects trust in the identifier:
//
//  1. checksum-valid GTIN      -> "<gtin>|<size>|<colour>"
//  2. manufacturer part number -> "<brand>|<mpn>|<size>|<colour>"
//  3. content hash             -> "csid_" + md5("<brand>|<model>|<size>|<colour>")[:8]
//
// Size and colour are lowercased before keying so casing differences across
// sources cannot split one variant into two identities. Total: always returns
// a value, never fails. Invalid GTINs simply demote to the next tier.
func ResolveCSID(in CSIDInput) string {
	sizeKey := NormLower(in.Size)
	colKey := NormLower(in.Colour)
	if ValidGTIN(Norm(in.GTIN)) {
		return fmt.Sprintf("%s|%s|%s", Norm(in.GTIN), sizeKey, colKey)
	}
	if mpn := Norm(in.MPN); mpn != "" {
		return fmt.Sprintf("%s|%s|%s|%s", NormLower(in.Brand), mpn, sizeKey, colKey)
	}
	return "csid_" + hash8(fmt.Sprintf("%s|%s|%s|%s",
		NormLower(in.Brand), NormLower(in.ModelName), sizeKey, colKey))
}

func hash8(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:8]
}
