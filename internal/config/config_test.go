// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/eachdir/internal/template"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	stubs := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	require.NoError(t, afero.WriteFile(fs, "/etc/eachdir.yaml", []byte(`
directory: /srv
invert: true
debug: 2
threads: 8
ignore_warnings: true
mode: workdir
`), 0o644))

	f, err := Load(context.Background(), FsFactory(), "/etc/eachdir.yaml")
	require.NoError(t, err)

	require.NotNil(t, f.Directory)
	assert.Equal(t, "/srv", *f.Directory)
	require.NotNil(t, f.Invert)
	assert.True(t, *f.Invert)
	require.NotNil(t, f.Debug)
	assert.Equal(t, 2, *f.Debug)
	require.NotNil(t, f.Threads)
	assert.Equal(t, 8, *f.Threads)
	require.NotNil(t, f.IgnoreWarnings)
	assert.True(t, *f.IgnoreWarnings)
	require.NotNil(t, f.Mode)
	assert.Equal(t, template.ModeWorkdir.String(), *f.Mode)
}

func TestLoad_PartialFileLeavesOthersUnset(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "partial.yaml", []byte("threads: 2\n"), 0o644))

	f, err := Load(context.Background(), fs, "partial.yaml")
	require.NoError(t, err)

	require.NotNil(t, f.Threads)
	assert.Equal(t, 2, *f.Threads)
	assert.Nil(t, f.Directory)
	assert.Nil(t, f.Invert)
	assert.Nil(t, f.Debug)
	assert.Nil(t, f.IgnoreWarnings)
	assert.Nil(t, f.Mode)
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "unknown.yaml", []byte("colour: red\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "broken.yaml", []byte("threads: [1, 2\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "wrongtype.yaml", []byte("threads: many\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "negative.yaml", []byte("threads: -1\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "mode.yaml", []byte("mode: sideways\n"), 0o644))

	testCases := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "empty path", path: "", wantErr: ErrLoadConfig},
		{name: "missing file", path: "missing.yaml", wantErr: ErrLoadConfig},
		{name: "unknown key", path: "unknown.yaml", wantErr: ErrLoadConfig},
		{name: "malformed yaml", path: "broken.yaml", wantErr: ErrLoadConfig},
		{name: "wrong type", path: "wrongtype.yaml", wantErr: ErrLoadConfig},
		{name: "negative threads", path: "negative.yaml", wantErr: ErrInvalidConfig},
		{name: "unknown mode", path: "mode.yaml", wantErr: template.ErrUnknownMode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Load(context.Background(), fs, tc.path)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, f)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, &File{}, f)
}

func TestIsLocal(t *testing.T) {
	assert.True(t, isLocal("eachdir.yaml"))
	assert.True(t, isLocal("./conf/eachdir.yaml"))
	assert.True(t, isLocal("/etc/eachdir.yaml"))
	assert.False(t, isLocal("git::https://github.com/org/repo.git//eachdir.yaml"))
	assert.False(t, isLocal("https://example.com//eachdir.yaml"))
}
