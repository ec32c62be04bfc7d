package install

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEndToEnd(t *testing.T) {
	host := t.TempDir()
	writeHostSkeleton(t, host)
	bundle := writeBundleFixture(t, t.TempDir())
	layout := LayoutAt(host)
	mgr := &fakeManager{}
	var out bytes.Buffer

	err := Run(Options{
		Layout:  layout,
		Bundle:  bundle,
		System:  hostSystem{euid: 0},
		Manager: mgr,
		Out:     &out,
	})
	require.NoError(t, err)

	for _, path := range []string{
		filepath.Join(layout.AppDir, "dnsserverd.py"),
		filepath.Join(layout.AppDir, "lib", "api.py"),
		filepath.Join(layout.AppDir, "lib", "datatypes.py"),
		filepath.Join(layout.ConfigDir, "dnsserverd.ini"),
		filepath.Join(layout.ResourceDir, "dbus-interface.xml"),
		layout.LauncherPath,
		layout.UnitPath,
		layout.PolicyPath,
	} {
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr, "expected %s to exist", path)
	}

	info, err := os.Stat(layout.LauncherPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o111), info.Mode().Perm()&0o111, "launcher must be executable")

	shim, err := os.ReadFile(layout.LauncherPath)
	require.NoError(t, err)
	assert.Contains(t, string(shim), filepath.Join(layout.AppDir, "dnsserverd.py"))
	assert.Contains(t, string(shim), `"$@"`)

	assert.Equal(t, 1, mgr.calls, "expected exactly one daemon-reload")
	assert.True(t, strings.Contains(out.String(), "Reloading systemd unit catalogue"))
}

func TestRunWithoutRootTouchesNothing(t *testing.T) {
	host := t.TempDir()
	writeHostSkeleton(t, host)
	bundle := writeBundleFixture(t, t.TempDir())
	mgr := &fakeManager{}
	before := snapshotTree(t, host)

	err := Run(Options{
		Layout:  LayoutAt(host),
		Bundle:  bundle,
		System:  hostSystem{euid: 1000},
		Manager: mgr,
	})
	require.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, 0, mgr.calls)
	assert.Equal(t, before, snapshotTree(t, host), "filesystem must be unchanged")
}

func TestRunTwiceIsIdempotent(t *testing.T) {
	host := t.TempDir()
	writeHostSkeleton(t, host)
	bundle := writeBundleFixture(t, t.TempDir())
	opts := Options{
		Layout:  LayoutAt(host),
		Bundle:  bundle,
		System:  hostSystem{euid: 0},
		Manager: &fakeManager{},
	}

	require.NoError(t, Run(opts))
	first := snapshotTree(t, host)
	require.NoError(t, Run(opts))
	assert.Equal(t, first, snapshotTree(t, host), "second run must reproduce the first run's state")
}

func TestRunKeepsUnrelatedFilesInExistingDirs(t *testing.T) {
	host := t.TempDir()
	writeHostSkeleton(t, host)
	bundle := writeBundleFixture(t, t.TempDir())
	layout := LayoutAt(host)

	require.NoError(t, os.MkdirAll(layout.ConfigDir, 0o755))
	unrelated := filepath.Join(layout.ConfigDir, "operator-notes.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("keep"), 0o644))

	require.NoError(t, Run(Options{
		Layout:  layout,
		Bundle:  bundle,
		System:  hostSystem{euid: 0},
		Manager: &fakeManager{},
	}))

	data, err := os.ReadFile(unrelated)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestRunMissingPolicyAbortsBeforeReload(t *testing.T) {
	host := t.TempDir()
	writeHostSkeleton(t, host)
	bundleRoot := t.TempDir()
	bundle := writeBundleFixture(t, bundleRoot)
	require.NoError(t, os.Remove(bundle.PolicyFile))
	layout := LayoutAt(host)
	mgr := &fakeManager{}

	err := Run(Options{
		Layout:  layout,
		Bundle:  bundle,
		System:  hostSystem{euid: 0},
		Manager: mgr,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 0, mgr.calls, "reload must not run after a staging failure")

	// The unit registration step comes after policy registration and must not
	// have happened either.
	_, statErr := os.Stat(layout.UnitPath)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestRunReloadFailureLeavesFilesInPlace(t *testing.T) {
	host := t.TempDir()
	writeHostSkeleton(t, host)
	bundle := writeBundleFixture(t, t.TempDir())
	layout := LayoutAt(host)
	mgr := &fakeManager{err: errors.New("bus unavailable")}

	err := Run(Options{
		Layout:  layout,
		Bundle:  bundle,
		System:  hostSystem{euid: 0},
		Manager: mgr,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reload")

	for _, path := range []string{layout.UnitPath, layout.PolicyPath, layout.LauncherPath} {
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr, "placed file %s must not be rolled back", path)
	}
}

func TestRunProgressLines(t *testing.T) {
	host := t.TempDir()
	writeHostSkeleton(t, host)
	bundle := writeBundleFixture(t, t.TempDir())
	var out bytes.Buffer

	require.NoError(t, Run(Options{
		Layout:  LayoutAt(host),
		Bundle:  bundle,
		System:  hostSystem{euid: 0},
		Manager: &fakeManager{},
		Out:     &out,
	}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Creating installation directories...", lines[0])
	assert.Equal(t, "Reloading systemd unit catalogue...", lines[7])
}

func TestRunRequiresDependencies(t *testing.T) {
	err := Run(Options{Manager: &fakeManager{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "install system is required")

	err = Run(Options{System: hostSystem{euid: 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service manager is required")
}
