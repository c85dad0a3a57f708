package static

import (
	"os"
	"time"
)

// FileInfo is the per-request view of a filesystem entry. It is read fresh
// for every request and never cached.
type FileInfo struct {
	Size    uint64
	IsDir   bool
	ModTime time.Time
}

// Prober reports whether a path exists and what it is.
type Prober interface {
	Probe(path string) (FileInfo, bool)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(path string) (FileInfo, bool)

// Probe calls f(path).
func (f ProberFunc) Probe(path string) (FileInfo, bool) {
	return f(path)
}

// osProber stats the local filesystem. Any stat error counts as "missing".
type osProber struct{}

func (osProber) Probe(path string) (FileInfo, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, false
	}
	return FileInfo{
		Size:    uint64(fi.Size()),
		IsDir:   fi.IsDir(),
		ModTime: fi.ModTime(),
	}, true
}
