package project

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect_FromNestedDirectory(t *testing.T) {
	mfs := NewFixtureBuilder("/plugin").Boilerplate("old-slug").Build()
	mfs.AddDir("/plugin/src/blocks/hero")
	mfs.SetCurrentDir("/plugin/src/blocks/hero")

	p, err := Detect(mfs)
	require.NoError(t, err)
	require.Equal(t, "/plugin", p.Root)
	require.Equal(t, "old-slug", p.TextDomain())
	require.Equal(t, "/plugin/config/plugin.config.js", p.ConfigPath())
	require.Equal(t, "/plugin/phpcs.xml.dist", p.PHPCSPath())
}

func TestDetect_NotFound(t *testing.T) {
	mfs := NewFixtureBuilder("/elsewhere").Build()

	_, err := Detect(mfs)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOpen_WithoutConfig(t *testing.T) {
	mfs := NewFixtureBuilder("/plugin").WithEntryFile("old-slug").Build()

	p, err := Open(mfs, "/plugin")
	require.NoError(t, err)
	require.Nil(t, p.Config)
	require.Equal(t, "", p.TextDomain())
}

func TestLocateEntryFile(t *testing.T) {
	t.Run("from config textdomain", func(t *testing.T) {
		mfs := NewFixtureBuilder("/plugin").WithConfig("old-slug").Build()
		p, err := Open(mfs, "/plugin")
		require.NoError(t, err)

		path, err := p.LocateEntryFile()
		require.NoError(t, err)
		require.Equal(t, "/plugin/old-slug.php", path)
	})

	t.Run("discovered by plugin header", func(t *testing.T) {
		mfs := NewFixtureBuilder("/plugin").
			WithEntryFile("old-slug").
			WithFile("uninstall.php", "<?php\n// cleanup\n").
			Build()
		p, err := Open(mfs, "/plugin")
		require.NoError(t, err)

		path, err := p.LocateEntryFile()
		require.NoError(t, err)
		require.Equal(t, "/plugin/old-slug.php", path)
	})

	t.Run("nothing to discover", func(t *testing.T) {
		mfs := NewFixtureBuilder("/plugin").WithFile("uninstall.php", "<?php\n").Build()
		p, err := Open(mfs, "/plugin")
		require.NoError(t, err)

		_, err = p.LocateEntryFile()
		require.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("ambiguous", func(t *testing.T) {
		mfs := NewFixtureBuilder("/plugin").WithEntryFile("one").WithEntryFile("two").Build()
		p, err := Open(mfs, "/plugin")
		require.NoError(t, err)

		_, err = p.LocateEntryFile()
		require.Error(t, err)
		require.Contains(t, err.Error(), "several plugin entry files")
	})
}
