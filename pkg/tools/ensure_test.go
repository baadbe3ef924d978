// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tools

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTool struct {
	name             string
	installUrl       string
	checkInstalledFn func(ctx context.Context) (bool, error)
}

func (m *mockTool) CheckInstalled(ctx context.Context) (bool, error) {
	return m.checkInstalledFn(ctx)
}

func (m *mockTool) InstallUrl() string {
	return m.installUrl
}

func (m *mockTool) Name() string {
	return m.name
}

func Test_Unique(t *testing.T) {
	npm := NewNpmCli(nil)
	ng := NewNgCli(nil)

	tools := []ExternalTool{npm, ng, npm, npm, ng}
	unique := Unique(tools)

	require.Len(t, unique, 2)
	require.Equal(t, npm.Name(), unique[0].Name())
	require.Equal(t, ng.Name(), unique[1].Name())
}

func Test_EnsureInstalled(t *testing.T) {
	installedTool := &mockTool{
		name:       "installed",
		installUrl: "https://example.com/installed",
		checkInstalledFn: func(ctx context.Context) (bool, error) {
			return true, nil
		},
	}
	missingToolOne := &mockTool{
		name:       "missing-one",
		installUrl: "https://example.com/missing-one",
		checkInstalledFn: func(ctx context.Context) (bool, error) {
			return false, nil
		},
	}
	missingToolTwo := &mockTool{
		name:       "missing-two",
		installUrl: "https://example.com/missing-two",
		checkInstalledFn: func(ctx context.Context) (bool, error) {
			return false, nil
		},
	}
	brokenTool := &mockTool{
		name:       "broken",
		installUrl: "https://example.com/broken",
		checkInstalledFn: func(ctx context.Context) (bool, error) {
			return false, errors.New("exec failed")
		},
	}

	t.Run("HaveAll", func(t *testing.T) {
		err := EnsureInstalled(context.Background(), installedTool)
		require.NoError(t, err)
	})

	t.Run("MissingOne", func(t *testing.T) {
		err := EnsureInstalled(context.Background(), installedTool, missingToolOne)
		require.Error(t, err)
		assert.Regexp(t, regexp.MustCompile(regexp.QuoteMeta(missingToolOne.Name())), err.Error())
		assert.Regexp(t, regexp.MustCompile(regexp.QuoteMeta(missingToolOne.InstallUrl())), err.Error())
	})

	t.Run("MissingMany", func(t *testing.T) {
		err := EnsureInstalled(context.Background(), installedTool, missingToolOne, missingToolTwo)
		require.Error(t, err)
		assert.Regexp(t, regexp.MustCompile(regexp.QuoteMeta(missingToolOne.Name())), err.Error())
		assert.Regexp(t, regexp.MustCompile(regexp.QuoteMeta(missingToolOne.InstallUrl())), err.Error())
		assert.Regexp(t, regexp.MustCompile(regexp.QuoteMeta(missingToolTwo.Name())), err.Error())
		assert.Regexp(t, regexp.MustCompile(regexp.QuoteMeta(missingToolTwo.InstallUrl())), err.Error())
	})

	t.Run("CheckFailed", func(t *testing.T) {
		err := EnsureInstalled(context.Background(), brokenTool, missingToolOne)
		require.Error(t, err)
		assert.Regexp(t, regexp.MustCompile(regexp.QuoteMeta(brokenTool.Name())), err.Error())
		assert.Regexp(t, regexp.MustCompile(regexp.QuoteMeta(missingToolOne.Name())), err.Error())
	})
}
