//go:build !linux

package xa

import "golang.org/x/sys/unix"

// errNoAttr is the errno reported for an absent extended attribute. The
// BSDs and darwin report ENOATTR where linux reports ENODATA.
const errNoAttr = unix.ENOATTR
