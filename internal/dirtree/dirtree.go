// Package dirtree enumerates the directories beneath a root path.
package dirtree

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Dirs returns a lazy sequence of root followed by every directory beneath
// it, in lexical pre-order. Symbolic links are reported but not descended
// into unless root itself is one. Unreadable subtrees are skipped, and a
// missing root yields nothing.
//
// Each call to Dirs starts a fresh walk; a single sequence value should be
// ranged over once.
func Dirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return
		}

		// WalkDir does not follow a symlinked root, so walk the target and
		// report paths under the name we were given.
		walkRoot := root
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			walkRoot = resolved
		}

		_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != walkRoot {
					return fs.SkipDir
				}
				return nil
			}
			if !isDir(path, d) {
				return nil
			}

			rel, relErr := filepath.Rel(walkRoot, path)
			if relErr != nil {
				return nil
			}
			out := root
			if rel != "." {
				out = filepath.Join(root, rel)
			}
			if !yield(out) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// isDir reports whether the entry is a directory, resolving symlinks so
// that linked SDK subtrees still contribute their top-level path.
func isDir(path string, d fs.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Collect drains Dirs(root) into a slice.
func Collect(root string) []string {
	var dirs []string
	for dir := range Dirs(root) {
		dirs = append(dirs, dir)
	}
	return dirs
}
