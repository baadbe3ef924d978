// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fingerprint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gantryhq/gantry/pkg/osutil"
)

func writeManifest(t *testing.T, dir string, name string, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), osutil.PermissionFile))
}

func TestDetectorsOrder(t *testing.T) {
	var order []Framework
	for _, detector := range Detectors() {
		order = append(order, detector.Framework())
	}

	require.Equal(t, []Framework{IonicAngular, Ionic1, Angular, React}, order)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, dir string)
		want      Framework
		wantMatch bool
	}{
		{
			name: "ionic-angular dependency",
			setup: func(t *testing.T, dir string) {
				writeManifest(t, dir, "package.json", `{"dependencies": {"ionic-angular": "3.9.2"}}`)
			},
			want:      IonicAngular,
			wantMatch: true,
		},
		{
			name: "angular core dependency",
			setup: func(t *testing.T, dir string) {
				writeManifest(t, dir, "package.json", `{"dependencies": {"@angular/core": "^16.0.0"}}`)
			},
			want:      Angular,
			wantMatch: true,
		},
		{
			name: "angular core dev dependency",
			setup: func(t *testing.T, dir string) {
				writeManifest(t, dir, "package.json", `{"devDependencies": {"@angular/core": "^16.0.0"}}`)
			},
			want:      Angular,
			wantMatch: true,
		},
		{
			name: "react dependency",
			setup: func(t *testing.T, dir string) {
				writeManifest(t, dir, "package.json", `{"dependencies": {"react": "^18.2.0"}}`)
			},
			want:      React,
			wantMatch: true,
		},
		{
			name: "bower ionic dependency",
			setup: func(t *testing.T, dir string) {
				writeManifest(t, dir, "bower.json", `{"dependencies": {"ionic": "driftyco/ionic-bower#1.3.3"}}`)
			},
			want:      Ionic1,
			wantMatch: true,
		},
		{
			name: "www lib ionic marker",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.MkdirAll(filepath.Join(dir, "www", "lib", "ionic"), osutil.PermissionDirectory))
			},
			want:      Ionic1,
			wantMatch: true,
		},
		{
			name:      "empty directory",
			setup:     func(t *testing.T, dir string) {},
			wantMatch: false,
		},
		{
			name: "ionic-angular wins over angular",
			setup: func(t *testing.T, dir string) {
				writeManifest(t, dir, "package.json",
					`{"dependencies": {"ionic-angular": "3.9.2", "@angular/core": "^5.0.0"}}`)
			},
			want:      IonicAngular,
			wantMatch: true,
		},
		{
			name: "ionic1 wins over react",
			setup: func(t *testing.T, dir string) {
				writeManifest(t, dir, "bower.json", `{"dependencies": {"ionic": "1.3.3"}}`)
				writeManifest(t, dir, "package.json", `{"dependencies": {"react": "^18.2.0"}}`)
			},
			want:      Ionic1,
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			framework, matched := Match(context.Background(), dir, Detectors())
			require.Equal(t, tt.wantMatch, matched)
			if tt.wantMatch {
				require.Equal(t, tt.want, framework)
			}
		})
	}
}

func TestMatchSkipsFailedProbes(t *testing.T) {
	dir := t.TempDir()
	// An unparsable manifest fails every package.json probe, but a later
	// detector can still match on the marker directory.
	writeManifest(t, dir, "package.json", `{not json`)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "www", "lib", "ionic"), osutil.PermissionDirectory))

	framework, matched := Match(context.Background(), dir, Detectors())
	require.True(t, matched)
	require.Equal(t, Ionic1, framework)
}

func TestDetectProbeError(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "package.json", `{not json`)

	detector := &reactDetector{}
	matched, err := detector.Detect(context.Background(), dir)
	require.Error(t, err)
	require.False(t, matched)
}

func TestMatchMissingDirectory(t *testing.T) {
	framework, matched := Match(context.Background(), filepath.Join(t.TempDir(), "missing"), Detectors())
	require.False(t, matched)
	require.Empty(t, framework)
}
