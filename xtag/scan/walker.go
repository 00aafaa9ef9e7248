package scan

import (
	"log/slog"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sys/unix"
)

// dirID identifies a directory by (device, inode) rather than by path, so
// loop detection survives symlinks and bind mounts.
type dirID struct {
	dev uint64
	ino uint64
}

// Walker recursively enumerates a directory tree, feeding each regular file
// to the processor. Traversal is single-threaded and depth-first; the
// ancestor stack is owned exclusively by the walker and mutated only around
// the one recursive call.
type Walker struct {
	proc       *Processor
	opts       *Options
	rep        *Reporter
	ignoreFile string

	root    string
	ignored *ignore.GitIgnore
	parents []dirID
}

// NewWalker creates a walker. ignoreFile names the per-root exclusion file
// (gitignore syntax) looked up when a scan root is a directory; empty
// disables the lookup.
func NewWalker(proc *Processor, opts *Options, rep *Reporter, ignoreFile string) *Walker {
	return &Walker{
		proc:       proc,
		opts:       opts,
		rep:        rep,
		ignoreFile: ignoreFile,
	}
}

// Process checks one path from the command line: a regular file directly,
// or a whole tree when the path is a directory and the run is recursive.
//
// The return value follows the same contract as Processor.ProcessFile:
// 0 ok, positive recoverable, negative fatal.
func (w *Walker) Process(path string) int {
	w.root = path
	w.ignored = w.loadIgnorePatterns(path)
	w.parents = w.parents[:0]

	return w.visit(path)
}

// loadIgnorePatterns compiles the exclusion file under a directory root,
// if one exists. A broken exclusion file is reported and skipped rather
// than failing the scan.
func (w *Walker) loadIgnorePatterns(root string) *ignore.GitIgnore {
	if w.ignoreFile == "" {
		return nil
	}

	fi, err := os.Stat(root)
	if err != nil || !fi.IsDir() {
		return nil
	}

	ignorePath := filepath.Join(root, w.ignoreFile)
	if _, err := os.Stat(ignorePath); err != nil {
		return nil
	}

	ignored, err := ignore.CompileIgnoreFile(ignorePath)
	if err != nil {
		w.rep.Warnf("Warning: could not read %s: %v", ignorePath, err)
		return nil
	}

	slog.Debug("loaded ignore patterns", "path", ignorePath)
	return ignored
}

func (w *Walker) visit(path string) int {
	f, err := os.Open(path)
	if err != nil {
		w.rep.Errorf("Error: could not open file %q: %v", path, err)
		return 1
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		w.rep.Errorf("Error: could not stat file %q: %v", path, err)
		return -1
	}

	switch {
	case fi.Mode().IsRegular():
		return w.proc.ProcessFile(f, path, fi)

	case fi.IsDir():
		if !w.opts.Recursive {
			w.rep.Errorf("Error: %q is a directory", path)
			return 1
		}
		return w.visitDir(f, path)

	default:
		w.rep.Errorf("Error: %q: not a regular file or directory", path)
		return 1
	}
}

// visitDir descends into one directory. A failure on a single child never
// stops enumeration of its siblings; only fatal (negative) codes do.
func (w *Walker) visitDir(f *os.File, path string) int {
	slog.Debug("processing dir", "path", path)

	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		w.rep.Errorf("Error: could not stat directory %q: %v", path, err)
		return -1
	}

	self := dirID{dev: uint64(st.Dev), ino: st.Ino}
	for _, parent := range w.parents {
		if parent == self {
			w.rep.Errorf("Filesystem loop detected at %q", path)
			return 1
		}
	}

	entries, err := f.ReadDir(-1)
	if err != nil {
		w.rep.Errorf("Failed to open directory %q: %v", path, err)
		return 1
	}

	ret := 0
	w.parents = append(w.parents, self)

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())

		if w.isIgnored(child) {
			slog.Debug("skipping ignored entry", "path", child)
			continue
		}

		if code := w.visit(child); code != 0 {
			ret = code
			if code < 0 {
				break
			}
		}
	}

	w.parents = w.parents[:len(w.parents)-1]
	return ret
}

// isIgnored matches a child path against the root's exclusion patterns,
// using its path relative to the scan root as gitignore semantics expect.
func (w *Walker) isIgnored(path string) bool {
	if w.ignored == nil {
		return false
	}

	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}

	return w.ignored.MatchesPath(rel)
}
