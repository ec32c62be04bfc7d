package install

import "path/filepath"

// Product is the installed component name. Every destination path below is
// derived from it.
const Product = "dnsserverd"

// BusInterface is the D-Bus interface name the daemon exposes; the security
// policy file is registered under it.
const BusInterface = "org." + Product + ".DNSServer"

// Layout holds the fixed destination paths of one installation. It is
// computed once at procedure start and never mutated.
type Layout struct {
	// AppDir receives the deployed application and library sources.
	AppDir string
	// ConfigDir receives the runtime configuration file.
	ConfigDir string
	// ResourceDir receives the D-Bus interface descriptor.
	ResourceDir string
	// LauncherPath is the generated executable shim.
	LauncherPath string
	// UnitPath is the systemd service unit definition.
	UnitPath string
	// PolicyPath is the D-Bus security policy file.
	PolicyPath string
}

// DefaultLayout returns the production layout rooted at /.
func DefaultLayout() Layout {
	return LayoutAt("/")
}

// LayoutAt derives the destination paths under root. Tests pass a temp
// directory; production uses DefaultLayout.
func LayoutAt(root string) Layout {
	return Layout{
		AppDir:       filepath.Join(root, "usr", "lib", Product),
		ConfigDir:    filepath.Join(root, "etc", Product, "config"),
		ResourceDir:  filepath.Join(root, "etc", Product, "rsc"),
		LauncherPath: filepath.Join(root, "usr", "bin", Product),
		UnitPath:     filepath.Join(root, "etc", "systemd", "system", Product+".service"),
		PolicyPath:   filepath.Join(root, "etc", "dbus-1", "system.d", BusInterface+".conf"),
	}
}
