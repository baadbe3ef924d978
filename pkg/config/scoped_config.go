// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"strings"
)

// NewScopedConfig returns a view over root whose accessor paths all resolve
// beneath the given key path. The view shares the root's backing document, so
// writes through the view land in the root and are visible to other readers.
func NewScopedConfig(root Config, path ...string) Config {
	return &scopedConfig{
		root:   root,
		prefix: strings.Join(path, "."),
	}
}

type scopedConfig struct {
	root   Config
	prefix string
}

func (c *scopedConfig) scope(path string) string {
	if path == "" {
		return c.prefix
	}

	return c.prefix + "." + path
}

func (c *scopedConfig) Raw() map[string]any {
	node, ok := nodeAt(c.root.Raw(), c.prefix)
	if !ok {
		return map[string]any{}
	}

	return node
}

func (c *scopedConfig) ResolvedRaw() map[string]any {
	node, ok := nodeAt(c.root.ResolvedRaw(), c.prefix)
	if !ok {
		return map[string]any{}
	}

	return node
}

func (c *scopedConfig) IsEmpty() bool {
	return len(c.Raw()) == 0
}

func (c *scopedConfig) Get(path string) (any, bool) {
	return c.root.Get(c.scope(path))
}

func (c *scopedConfig) GetString(path string) (string, bool) {
	return c.root.GetString(c.scope(path))
}

func (c *scopedConfig) GetSection(path string, section any) (bool, error) {
	return c.root.GetSection(c.scope(path), section)
}

func (c *scopedConfig) Set(path string, value any) error {
	return c.root.Set(c.scope(path), value)
}

func (c *scopedConfig) SetSecret(path string, value string) error {
	return c.root.SetSecret(c.scope(path), value)
}

func (c *scopedConfig) Unset(path string) error {
	return c.root.Unset(c.scope(path))
}

// nodeAt walks the document to the map node at the given dotted path.
func nodeAt(data map[string]any, path string) (map[string]any, bool) {
	currentNode := data
	for _, part := range strings.Split(path, ".") {
		value, ok := currentNode[part]
		if !ok {
			return nil, false
		}

		node, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}

		currentNode = node
	}

	return currentNode, true
}
