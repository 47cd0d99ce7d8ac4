//go:build linux

package cli

import "golang.org/x/sys/unix"

func termiosRequests() (get uint, set uint) {
	return unix.TCGETS, unix.TCSETS
}
