//go:build unix

package files

import (
	"fmt"
	"os"
	"syscall"
)

func ownerOf(info os.FileInfo) (int, int, error) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, fmt.Errorf("ownership unavailable for %s", info.Name())
	}
	return int(st.Uid), int(st.Gid), nil
}
