// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package ioc wraps the golobby/container package to provide support for the following:
// 1. Registration of specific type instances alongside lazy type resolvers
// 2. Hierarchical/nested containers that fall back to parent containers during resolution
// 3. Helper methods for streamlined usage of the IoC container
package ioc

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/golobby/container/v3"
)

var (
	// The golobby project does not support typed errors,
	// but all of its error messages are prefixed with `container:`
	containerErrorRegex *regexp.Regexp = regexp.MustCompile("container:")

	ErrResolveInstance error = errors.New("failed resolving instance from container")
)

// NestedContainer is an IoC container that supports nested scopes.
// Resolutions that miss in the current scope are retried against the parent.
type NestedContainer struct {
	inner  container.Container
	parent *NestedContainer
}

// NewNestedContainer creates a child container of parent, copying the
// parent's resolvers into the new scope.
func NewNestedContainer(parent *NestedContainer) *NestedContainer {
	current := container.New()
	if parent != nil {
		for key, value := range parent.inner {
			current[key] = value
		}
	}

	return &NestedContainer{
		inner:  current,
		parent: parent,
	}
}

// RegisterSingleton registers a resolver with a singleton lifetime.
// Panics if the resolver is not valid.
func (c *NestedContainer) RegisterSingleton(resolveFn any) {
	container.MustSingletonLazy(c.inner, resolveFn)
}

// RegisterNamedSingleton registers a named resolver with a singleton lifetime.
// Returns an error if the resolver is not valid.
func (c *NestedContainer) RegisterNamedSingleton(name string, resolveFn any) error {
	return c.inner.NamedSingletonLazy(name, resolveFn)
}

// RegisterSingletonAndInvoke registers a resolver with a singleton lifetime
// and invokes it immediately, eagerly constructing the instance. Returns an
// error if the resolver is not valid or its construction fails.
func (c *NestedContainer) RegisterSingletonAndInvoke(resolveFn any) error {
	return c.inner.Singleton(resolveFn)
}

// Resolve resolves an instance for the specified type, walking up through
// parent scopes until a registration is found.
func (c *NestedContainer) Resolve(instance any) error {
	current := c
	for {
		err := current.inner.Resolve(instance)
		if err == nil {
			return nil
		}

		if current.parent == nil {
			return inspectResolveError(err)
		}
		current = current.parent
	}
}

// ResolveNamed resolves a named instance for the specified type, walking up
// through parent scopes until a registration is found.
func (c *NestedContainer) ResolveNamed(name string, instance any) error {
	current := c
	for {
		err := current.inner.NamedResolve(instance, name)
		if err == nil {
			return nil
		}

		if current.parent == nil {
			return inspectResolveError(err)
		}
		current = current.parent
	}
}

// RegisterInstance registers an already constructed instance of the
// specified type. Panics if the registration fails.
func RegisterInstance[F any](c *NestedContainer, instance F) {
	container.MustSingletonLazy(c.inner, func() F {
		return instance
	})
}

// RegisterNamedInstance registers an already constructed named instance of
// the specified type. Panics if the registration fails.
func RegisterNamedInstance[F any](c *NestedContainer, name string, instance F) {
	container.MustNamedSingletonLazy(c.inner, name, func() F {
		return instance
	})
}

// inspectResolveError distinguishes developer registration errors, which
// golobby reports with a `container:` prefix, from errors returned by a
// resolver while instantiating a dependency.
func inspectResolveError(err error) error {
	if containerErrorRegex.Match([]byte(err.Error())) {
		return fmt.Errorf("%w: %s", ErrResolveInstance, err.Error())
	}

	return err
}
