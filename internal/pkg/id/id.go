package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. ULIDs are lexicographically sortable
// by creation time and safe for use as KV store keys.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewRegistrationID returns "<unixMillis>-<7 random base36 chars>".
// Unique within an event's key namespace, not globally.
func NewRegistrationID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), RandomToken(7))
}

// RandomToken returns n cryptographically random base36 characters.
func RandomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			// crypto/rand failing means the process has no entropy source at all.
			panic("id: read random: " + err.Error())
		}
		b[i] = base36[idx.Int64()]
	}
	return string(b)
}
