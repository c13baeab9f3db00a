/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory FileSystem for tests.
package mapfs

import (
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements fs.FileSystem on top of fstest.MapFS.
// Directories created with MkdirAll are stored as fs.ModeDir entries;
// parents of added files exist implicitly.
type MapFileSystem struct {
	mu        sync.RWMutex
	files     fstest.MapFS
	modTime   time.Time
	writeErrs map[string]error
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		files:     make(fstest.MapFS),
		modTime:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		writeErrs: make(map[string]error),
	}
}

// AddFile seeds a file, bypassing write failures.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[key(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: m.modTime}
}

// FailWrites makes every later WriteFile at or under p fail with err.
func (m *MapFileSystem) FailWrites(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeErrs[key(p)] = err
}

// WriteFile implements FileSystem. Like os.WriteFile, it does not create
// missing parents, but any path some file already lives under counts as one.
func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(name)
	for p, err := range m.writeErrs {
		if within(k, p) {
			return &fs.PathError{Op: "write", Path: name, Err: err}
		}
	}
	if parent := path.Dir(k); parent != "." && !m.isDirLocked(parent) {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if f, ok := m.files[k]; ok && f.Mode.IsDir() {
		return &fs.PathError{Op: "open", Path: name, Err: errors.New("is a directory")}
	}

	m.files[k] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: perm, ModTime: m.modTime}
	return nil
}

// ReadFile implements FileSystem.
func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fs.ReadFile(m.files, key(name))
}

// MkdirAll implements FileSystem.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var missing []string
	for dir := key(p); dir != "."; dir = path.Dir(dir) {
		f, ok := m.files[dir]
		if !ok {
			missing = append(missing, dir)
			continue
		}
		if !f.Mode.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: p, Err: errors.New("not a directory")}
		}
	}
	for _, dir := range missing {
		m.files[dir] = &fstest.MapFile{Mode: fs.ModeDir | perm.Perm(), ModTime: m.modTime}
	}
	return nil
}

// Stat implements FileSystem.
func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fs.Stat(m.files, key(name))
}

// Exists implements FileSystem.
func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k := key(p)
	if _, ok := m.files[k]; ok {
		return true
	}
	return m.isDirLocked(k)
}

// Open implements FileSystem.
func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.files.Open(key(name))
}

// Files returns the absolute paths of all regular files, sorted.
func (m *MapFileSystem) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var paths []string
	for p, f := range m.files {
		if !f.Mode.IsDir() {
			paths = append(paths, "/"+p)
		}
	}
	sort.Strings(paths)
	return paths
}

// isDirLocked reports whether k is an explicit directory or the parent of an entry.
func (m *MapFileSystem) isDirLocked(k string) bool {
	if k == "." {
		return true
	}
	if f, ok := m.files[k]; ok {
		return f.Mode.IsDir()
	}
	for p := range m.files {
		if strings.HasPrefix(p, k+"/") {
			return true
		}
	}
	return false
}

// key maps an absolute or relative path to its fstest.MapFS key.
func key(p string) string {
	k := strings.TrimPrefix(path.Clean("/"+p), "/")
	if k == "" {
		return "."
	}
	return k
}

func within(k, p string) bool {
	return k == p || strings.HasPrefix(k, p+"/")
}
