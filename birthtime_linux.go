//go:build linux

package main

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// osBirthTime reads the birth time with statx(2). Filesystems which don't
// record it report no time.
func osBirthTime(path string, _ os.FileInfo) (time.Time, bool) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, false
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}
