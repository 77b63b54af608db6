//go:build unix

package sockaddr

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Decode and construction failures. Each sentinel wraps the errno a syscall
// boundary would report for the same condition, so errors.Is against either
// form holds.
var (
	// ErrTooShort reports a length below the minimum layout size implied by
	// the buffer's family discriminant.
	ErrTooShort = errors.Wrap(unix.EINVAL, "length below the family's minimum sockaddr layout size")

	// ErrUnsupportedFamily reports a discriminant with no compiled-in
	// variant. The OS may still support the family; callers are expected to
	// handle this outcome rather than treat it as corruption.
	ErrUnsupportedFamily = errors.Wrap(unix.EAFNOSUPPORT, "no compiled-in variant for address family")

	// ErrPathTooLong reports a unix socket path or abstract name exceeding
	// the platform's sun_path capacity. Oversized names are rejected at
	// construction, never truncated.
	ErrPathTooLong = errors.Wrap(unix.EINVAL, "unix socket path exceeds the platform maximum")

	// ErrShortBuffer reports a destination too small for the encoded layout.
	ErrShortBuffer = errors.Wrap(unix.EINVAL, "destination buffer below the sockaddr layout size")
)
