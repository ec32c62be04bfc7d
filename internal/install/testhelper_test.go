package install

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// hostSystem delegates to the real filesystem while reporting a fixed
// effective uid, so privileged runs can be exercised unprivileged against a
// temp-rooted layout.
type hostSystem struct {
	RealSystem
	euid int
}

func (s hostSystem) Geteuid() int { return s.euid }

type fakeManager struct {
	calls int
	err   error
}

func (m *fakeManager) DaemonReload() error {
	m.calls++
	return m.err
}

// writeHostSkeleton creates the directories a stock Linux host provides:
// /usr/bin, /etc/systemd/system, and /etc/dbus-1/system.d.
func writeHostSkeleton(t *testing.T, root string) {
	t.Helper()
	for _, dir := range []string{
		filepath.Join(root, "usr", "bin"),
		filepath.Join(root, "etc", "systemd", "system"),
		filepath.Join(root, "etc", "dbus-1", "system.d"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("create host dir %s: %v", dir, err)
		}
	}
}

// writeBundleFixture lays out a complete daemon source tree and returns its
// bundle.
func writeBundleFixture(t *testing.T, root string) Bundle {
	t.Helper()
	files := map[string]string{
		"dnsserverd.py":            "#!/usr/bin/env python3\n",
		"lib/api.py":               "api\n",
		"lib/datatypes.py":         "datatypes\n",
		"config/dnsserverd.ini":    "[DNS]\nlport = 53\n",
		"rsc/dbus-interface.xml":   "<node/>\n",
		"rsc/security-policy.conf": "<busconfig/>\n",
		"rsc/systemd-unit.service": "[Unit]\nDescription=dnsserverd\n",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create bundle dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write bundle file %s: %v", name, err)
		}
	}
	return BundleAt(root)
}

// snapshotTree maps every file under root to its content, keyed by relative
// path. Directories are recorded with an empty value.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	snapshot := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			snapshot[rel] = ""
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snapshot[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	return snapshot
}
