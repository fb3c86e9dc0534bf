//go:build !unix && !windows

package server

import "strings"

// No errno classification is available here; match the OS message instead.
func isAddrInUse(err error) bool {
	return strings.Contains(err.Error(), "address already in use")
}
