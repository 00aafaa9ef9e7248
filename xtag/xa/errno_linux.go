//go:build linux

package xa

import "golang.org/x/sys/unix"

// errNoAttr is the errno reported for an absent extended attribute.
const errNoAttr = unix.ENODATA
