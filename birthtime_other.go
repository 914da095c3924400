//go:build !linux && !darwin

package main

import (
	"os"
	"time"
)

// osBirthTime is unsupported on this platform.
func osBirthTime(string, os.FileInfo) (time.Time, bool) { return time.Time{}, false }
