package messages

// CLI messages for the installer command.
const (
	// RootUse is the CLI command name.
	RootUse = "dnsserverd-install"
	// RootShort is the short description for the root command.
	RootShort = "Install the dnsserverd daemon onto this host"
	RootLong  = "Stages the dnsserverd source bundle into the system directories,\n" +
		"generates the /usr/bin launcher, registers the D-Bus security policy\n" +
		"and systemd unit, and reloads the systemd unit catalogue.\n\n" +
		"Must be run as root from the root of the dnsserverd source tree."

	// VersionTemplate renders the --version output.
	VersionTemplate = "{{.Version}}\n"
	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	// InstallDone is printed after a fully successful run.
	InstallDone = "Installation complete. Start the service with: systemctl start dnsserverd"
)
