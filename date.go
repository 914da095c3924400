package main

import (
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// dateLayout is the canonical date hint format.
const dateLayout = "2006-01-02"

// exifLayout is the layout of EXIF DateTime* values.
const exifLayout = "2006:01:02 15:04:05"

// =============================================================================
// Date Resolution
// =============================================================================

// DateResolver derives the date hint of a candidate.
type DateResolver struct {
	Fs afero.Fs
	// Created returns the creation time of a file. Defaults to birthTime.
	Created func(fs afero.Fs, path string, info os.FileInfo) (time.Time, bool)
}

// NewDateResolver returns a DateResolver reading from fs.
func NewDateResolver(fs afero.Fs) *DateResolver {
	return &DateResolver{Fs: fs, Created: birthTime}
}

// ResolveDate determines the best available date for a file, formatted as
// YYYY-MM-DD. Priority:
//  1. EXIF DateTimeOriginal
//  2. File creation time
//
// Read failures only disqualify the source they happened in. Dates in the
// file name are left to the Namer, which is given the name.
func (r *DateResolver) ResolveDate(path string) (string, bool) {
	if t, ok := r.exifDate(path); ok {
		return t.Format(dateLayout), true
	}
	if t, ok := r.statDate(path); ok {
		return t.Format(dateLayout), true
	}
	return "", false
}

// exifDate extracts the capture date from a photo's EXIF metadata.
func (r *DateResolver) exifDate(path string) (time.Time, bool) {
	f, err := r.Fs.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		log.WithFields(log.Fields{"path": path, "err": err}).Debug("no EXIF metadata")
		return time.Time{}, false
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, false
	}
	val, err := tag.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	return parseExifTime(val)
}

// parseExifTime parses an EXIF timestamp, accepting values which carry
// only the date part.
func parseExifTime(val string) (time.Time, bool) {
	val = strings.TrimRight(strings.TrimSpace(val), "\x00")

	if t, err := time.ParseInLocation(exifLayout, val, time.Local); err == nil {
		return t, true
	}
	if len(val) >= 10 {
		if t, err := time.ParseInLocation("2006:01:02", val[:10], time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// statDate returns the creation time recorded by the filesystem.
func (r *DateResolver) statDate(path string) (time.Time, bool) {
	info, err := r.Fs.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	created := r.Created
	if created == nil {
		created = birthTime
	}
	t, ok := created(r.Fs, path, info)
	if !ok || t.IsZero() {
		return time.Time{}, false
	}
	return t.Local(), true
}

// birthTime returns the creation time of a file. Files on filesystems other
// than the OS filesystem have no birth time, and report their modification
// time instead.
func birthTime(fs afero.Fs, path string, info os.FileInfo) (time.Time, bool) {
	if _, ok := fs.(*afero.OsFs); !ok {
		return info.ModTime(), true
	}
	return osBirthTime(path, info)
}
