//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import "golang.org/x/sys/unix"

func termiosRequests() (get uint, set uint) {
	return unix.TIOCGETA, unix.TIOCSETA
}
