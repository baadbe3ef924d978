// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ioc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testService struct {
	name string
}

func Test_Resolve_From_Parent_Scope(t *testing.T) {
	parent := NewNestedContainer(nil)
	parent.RegisterSingleton(func() *testService {
		return &testService{name: "parent"}
	})

	child := NewNestedContainer(parent)

	var instance *testService
	require.NoError(t, child.Resolve(&instance))
	require.Equal(t, "parent", instance.name)
}

func Test_Child_Scope_Shadows_Parent(t *testing.T) {
	parent := NewNestedContainer(nil)
	parent.RegisterSingleton(func() *testService {
		return &testService{name: "parent"}
	})

	child := NewNestedContainer(parent)
	child.RegisterSingleton(func() *testService {
		return &testService{name: "child"}
	})

	var fromChild *testService
	require.NoError(t, child.Resolve(&fromChild))
	require.Equal(t, "child", fromChild.name)
}

func Test_Child_Registration_Invisible_To_Parent(t *testing.T) {
	parent := NewNestedContainer(nil)

	child := NewNestedContainer(parent)
	child.RegisterSingleton(func() *testService {
		return &testService{name: "child"}
	})

	var fromChild *testService
	require.NoError(t, child.Resolve(&fromChild))
	require.Equal(t, "child", fromChild.name)

	var fromParent *testService
	err := parent.Resolve(&fromParent)
	require.ErrorIs(t, err, ErrResolveInstance)
}

func Test_ResolveNamed(t *testing.T) {
	c := NewNestedContainer(nil)
	require.NoError(t, c.RegisterNamedSingleton("a", func() *testService {
		return &testService{name: "a"}
	}))
	require.NoError(t, c.RegisterNamedSingleton("b", func() *testService {
		return &testService{name: "b"}
	}))

	var instance *testService
	require.NoError(t, c.ResolveNamed("b", &instance))
	require.Equal(t, "b", instance.name)
}

func Test_Resolve_Unregistered(t *testing.T) {
	c := NewNestedContainer(nil)

	var instance *testService
	err := c.Resolve(&instance)
	require.ErrorIs(t, err, ErrResolveInstance)
}

func Test_Resolver_Error_Passes_Through(t *testing.T) {
	expected := errors.New("init failed")

	c := NewNestedContainer(nil)
	c.RegisterSingleton(func() (*testService, error) {
		return nil, expected
	})

	var instance *testService
	err := c.Resolve(&instance)
	require.ErrorIs(t, err, expected)
}

func Test_RegisterInstance(t *testing.T) {
	c := NewNestedContainer(nil)
	RegisterInstance(c, &testService{name: "instance"})

	var instance *testService
	require.NoError(t, c.Resolve(&instance))
	require.Equal(t, "instance", instance.name)
}
