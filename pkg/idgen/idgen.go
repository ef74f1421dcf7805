package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// New returns an opaque identifier with a type prefix, e.g. "TREN1714070000a1b2c3d4".
// The unix timestamp keeps ids roughly sortable; the random suffix avoids collisions.
func New(prefix string) string {
	buf := make([]byte, 4)
	rand.Read(buf)
	return fmt.Sprintf("%s%d%s", prefix, time.Now().Unix(), hex.EncodeToString(buf))
}
