// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"errors"
	"fmt"
	"os"
)

// StoreOptions controls how a Store loads and scopes its backing document.
type StoreOptions struct {
	// PathPrefix scopes every accessor path beneath the given dotted path.
	// Empty means accessors address the document root.
	PathPrefix string

	// Default builds the document used when the backing file does not exist.
	// When nil, a missing file is a load error.
	Default func() map[string]any

	// Migrate receives the (scoped) document once per load, before any reads.
	// When it reports that it changed the document, the store persists the
	// change before Load returns.
	Migrate func(c Config) (bool, error)
}

// Store binds a Config document to the file it was loaded from. Every
// mutation writes through to disk before returning, so a finished call means
// the bytes are on the file system.
type Store struct {
	path    string
	files   FileConfigManager
	root    Config
	scoped  Config
	content []byte
}

// LoadStore reads the document at path and wraps it in a Store.
func LoadStore(path string, files FileConfigManager, options StoreOptions) (*Store, error) {
	var root Config
	var content []byte

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		root, err = Parse(content)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && options.Default != nil:
		root = NewConfig(options.Default())
		content = nil
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	store := &Store{
		path:    path,
		files:   files,
		root:    root,
		scoped:  root,
		content: content,
	}

	if options.PathPrefix != "" {
		store.scoped = NewScopedConfig(root, options.PathPrefix)
	}

	if options.Migrate != nil {
		changed, err := options.Migrate(store.scoped)
		if err != nil {
			return nil, fmt.Errorf("migrating %s: %w", path, err)
		}

		if changed {
			if err := store.persist(); err != nil {
				return nil, err
			}
		}
	}

	return store, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Contents returns the document bytes as last read from or written to disk.
// Useful when key declaration order matters, which the parsed form loses.
func (s *Store) Contents() []byte {
	return s.content
}

// Config returns the document root, ignoring any path prefix.
func (s *Store) Config() Config {
	return s.root
}

func (s *Store) Get(path string) (any, bool) {
	return s.scoped.Get(path)
}

func (s *Store) GetString(path string) (string, bool) {
	return s.scoped.GetString(path)
}

func (s *Store) GetSection(path string, section any) (bool, error) {
	return s.scoped.GetSection(path, section)
}

// Set writes the value and persists the document before returning.
func (s *Store) Set(path string, value any) error {
	if err := s.scoped.Set(path, value); err != nil {
		return err
	}

	return s.persist()
}

// Unset removes the value and persists the document before returning.
func (s *Store) Unset(path string) error {
	if err := s.scoped.Unset(path); err != nil {
		return err
	}

	return s.persist()
}

func (s *Store) persist() error {
	if err := s.files.Save(s.root, s.path); err != nil {
		return fmt.Errorf("saving %s: %w", s.path, err)
	}

	// Keep Contents in sync with what just went to disk.
	content, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("rereading %s: %w", s.path, err)
	}
	s.content = content

	return nil
}
