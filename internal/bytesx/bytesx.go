package bytesx

import "encoding/hex"

const (
	KiB = 1 << 10
	MiB = 1 << 20
)

// Debug renders a buffer as a hex dump for test diagnostics.
func Debug(b []byte) string {
	return hex.Dump(b)
}
