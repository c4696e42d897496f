// Package source discovers and loads the markdown documents feeding a
// compression run.
package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/verdant/internal/document"
)

// Loader reads markdown files from disk. Unreadable files are logged
// and skipped rather than failing the run.
type Loader struct {
	log *zap.Logger
}

func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Discover walks root recursively and returns the paths of all .md
// files, in walk order. Unreadable subtrees are skipped; an unreadable
// root is an error.
func (l *Loader) Discover(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			l.log.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".md" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Load reads each path into a document. Files that cannot be read are
// logged and dropped; files whose metadata cannot be read keep their
// content and fall back to the current time.
func (l *Loader) Load(paths []string) []document.Document {
	docs := make([]document.Document, 0, len(paths))

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			l.log.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
			continue
		}

		modified := time.Now()
		if info, err := os.Stat(path); err == nil {
			modified = info.ModTime()
		}

		docs = append(docs, document.Document{
			Name:       filepath.Base(path),
			ModifiedAt: modified,
			RawContent: string(content),
		})
	}

	return docs
}

// SortChronological orders documents oldest first. The sort is stable
// so files sharing a timestamp keep their discovery order.
func SortChronological(docs []document.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].ModifiedAt.Before(docs[j].ModifiedAt)
	})
}
