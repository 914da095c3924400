package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDatePrefersExif(t *testing.T) {
	var fs = afero.NewMemMapFs()
	writeFile(t, fs, "img.jpg", exifJPEG("2023:06:01 12:00:00", ""),
		time.Date(2024, 2, 3, 4, 5, 6, 0, time.Local))

	got, ok := NewDateResolver(fs).ResolveDate("img.jpg")
	assert.True(t, ok)
	assert.Equal(t, "2023-06-01", got)
}

func TestResolveDateFallsBackToCreationTime(t *testing.T) {
	var fs = afero.NewMemMapFs()
	writeFile(t, fs, "IMG_20200101_101010.png", pngBytes(""),
		time.Date(2024, 2, 3, 4, 5, 6, 0, time.Local))

	got, ok := NewDateResolver(fs).ResolveDate("IMG_20200101_101010.png")
	assert.True(t, ok)
	assert.Equal(t, "2024-02-03", got)
}

func TestResolveDateIgnoresFilename(t *testing.T) {
	var fs = afero.NewMemMapFs()
	writeFile(t, fs, "photos/20190704_party.png", pngBytes(""), time.Time{})

	var r = NewDateResolver(fs)
	r.Created = func(afero.Fs, string, os.FileInfo) (time.Time, bool) { return time.Time{}, false }

	got, ok := r.ResolveDate("photos/20190704_party.png")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestResolveDateNone(t *testing.T) {
	var fs = afero.NewMemMapFs()
	writeFile(t, fs, "beach.png", pngBytes(""), time.Time{})

	var r = NewDateResolver(fs)
	r.Created = func(afero.Fs, string, os.FileInfo) (time.Time, bool) { return time.Time{}, false }

	_, ok := r.ResolveDate("beach.png")
	assert.False(t, ok)

	_, ok = r.ResolveDate("missing.png")
	assert.False(t, ok)
}

func TestParseExifTime(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
		ok   bool
	}{
		{"2023:06:01 12:00:00", "2023-06-01", true},
		{"2023:06:01 12:00:00\x00", "2023-06-01", true},
		{"2023:06:01", "2023-06-01", true},
		{"2023:06:01 garbage", "2023-06-01", true},
		{"    :  :     :  :  ", "", false},
		{"", "", false},
	} {
		got, ok := parseExifTime(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if ok {
			assert.Equal(t, tc.want, got.Format(dateLayout), tc.in)
		}
	}
}

func TestBirthTimeOnOsFs(t *testing.T) {
	var before = time.Now().Add(-time.Minute)
	var path = filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(path, pngBytes(""), 0644))

	// A modification time far in the past must not stand in for creation.
	var old = time.Date(2001, 1, 1, 0, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(path, old, old))

	var fs = afero.NewOsFs()
	info, err := fs.Stat(path)
	require.NoError(t, err)

	created, ok := birthTime(fs, path, info)
	if !ok {
		t.Skip("filesystem does not record birth times")
	}
	assert.True(t, created.After(before), created)

	got, ok := NewDateResolver(fs).ResolveDate(path)
	assert.True(t, ok)
	assert.Equal(t, created.Local().Format(dateLayout), got)
}
