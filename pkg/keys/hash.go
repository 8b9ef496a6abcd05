package keys

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
	"golang.org/x/crypto/ripemd160"
)

// SHA512Half returns the first 256 bits of the SHA-512 digest of the
// concatenation of the given chunks.
func SHA512Half(chunks ...[]byte) [32]byte {
	h := sha512.New()
	for _, c := range chunks {
		h.Write(c)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// CalcAccountID derives the account identifier of a public key.
func CalcAccountID(pub PublicKey) addresscodec.AccountID {
	sha := sha256.Sum256(pub)
	r := ripemd160.New()
	r.Write(sha[:])
	var id addresscodec.AccountID
	copy(id[:], r.Sum(nil))
	return id
}
