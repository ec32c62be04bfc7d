package install

import "path/filepath"

// Names of the source bundle members, relative to the bundle root. The
// installer is expected to run from the root of the daemon source tree.
const (
	entryName     = Product + ".py"
	libDirName    = "lib"
	configName    = Product + ".ini"
	interfaceName = "dbus-interface.xml"
	policyName    = "security-policy.conf"
	unitName      = "systemd-unit.service"
)

// Bundle holds the source paths of one installation. It is fixed at
// procedure start; every member must exist or the run aborts at the step
// that first reads it.
type Bundle struct {
	// Entry is the daemon entry point script.
	Entry string
	// LibDir is the daemon library source tree.
	LibDir string
	// ConfigFile is the runtime configuration file.
	ConfigFile string
	// InterfaceDescriptor is the D-Bus interface XML.
	InterfaceDescriptor string
	// PolicyFile is the D-Bus security policy.
	PolicyFile string
	// UnitFile is the systemd unit definition.
	UnitFile string
}

// BundleAt returns the bundle rooted at the given source directory.
func BundleAt(root string) Bundle {
	return Bundle{
		Entry:               filepath.Join(root, entryName),
		LibDir:              filepath.Join(root, libDirName),
		ConfigFile:          filepath.Join(root, "config", configName),
		InterfaceDescriptor: filepath.Join(root, "rsc", interfaceName),
		PolicyFile:          filepath.Join(root, "rsc", policyName),
		UnitFile:            filepath.Join(root, "rsc", unitName),
	}
}
