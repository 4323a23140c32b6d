// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ProjectRootEnv names the environment variable overriding the project root.
const ProjectRootEnv = "EVMSIM_PROJECT_ROOT"

// ProjectRoot locates the directory relative artifact paths are resolved
// against. It is taken from ProjectRootEnv if set, otherwise it is the
// closest directory containing a go.mod file, starting at the working
// directory.
func ProjectRoot() (string, error) {
	if root := os.Getenv(ProjectRootEnv); root != "" {
		return root, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found above working directory")
		}
		dir = parent
	}
}

// Loader loads artifacts relative to a root directory and caches the
// results. Loader is safe for concurrent use.
type Loader struct {
	root  string
	cache *lru.Cache[string, Metadata]
}

// NewLoader creates a loader resolving relative paths against root and
// keeping up to size artifacts in memory.
func NewLoader(root string, size int) (*Loader, error) {
	cache, err := lru.New[string, Metadata](size)
	if err != nil {
		return nil, err
	}
	return &Loader{root: root, cache: cache}, nil
}

// Load returns the metadata stored in the given artifact file.
func (l *Loader) Load(path string) (Metadata, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}
	path = filepath.Clean(path)
	if meta, found := l.cache.Get(path); found {
		return meta, nil
	}
	meta, err := LoadMetadata(path)
	if err != nil {
		return Metadata{}, err
	}
	log.Debug("Loaded contract metadata", "name", meta.Name, "path", path)
	l.cache.Add(path, meta)
	return meta, nil
}
