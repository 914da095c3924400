package main

import (
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// =============================================================================
// File Type Detection
// =============================================================================

// sniffLen is how much of a file is read for content sniffing.
const sniffLen = 3072

// isImageFile reports whether the file at path holds image content.
// Classification looks at magic bytes only; the extension is ignored.
func isImageFile(fs afero.Fs, path string) bool {
	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, _ := f.Read(buf)
	if n == 0 {
		return false
	}
	return isImage(buf[:n])
}

// isImage reports whether data starts like an image.
func isImage(data []byte) bool {
	return strings.HasPrefix(mimetype.Detect(data).String(), "image/")
}

// =============================================================================
// File Discovery
// =============================================================================

// Discover expands paths into the list of image files to rename.
//
// Files are included when their content is an image. Directories are walked
// depth-first in lexical order, and walk errors on individual entries are
// skipped. Paths that are neither a file nor a directory are reported and
// ignored. Overlapping inputs are not de-duplicated.
func Discover(fs afero.Fs, paths []string) []string {
	var files []string

	for _, path := range paths {
		info, err := fs.Stat(path)
		switch {
		case err != nil:
			log.WithField("path", path).Warn("not a valid file or directory, skipping")

		case info.Mode().IsRegular():
			if isImageFile(fs, path) {
				files = append(files, path)
			} else {
				log.WithField("path", path).Info("not an image, skipping")
			}

		case info.IsDir():
			_ = afero.Walk(fs, path, func(p string, fi os.FileInfo, err error) error {
				if err != nil {
					return nil // Skip errors, continue walking
				}
				if fi.Mode().IsRegular() && isImageFile(fs, p) {
					files = append(files, p)
				}
				return nil
			})

		default:
			log.WithField("path", path).Warn("not a valid file or directory, skipping")
		}
	}

	return files
}
