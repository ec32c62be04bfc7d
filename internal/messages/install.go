package messages

// Installer progress and error messages.
const (
	// InstallNotRoot indicates the invoking identity lacks root privilege.
	InstallNotRoot = "dnsserverd-install must be run as root"
	// InstallSystemRequired indicates the System dependency is missing.
	InstallSystemRequired = "install system is required"
	// InstallManagerRequired indicates the service manager dependency is missing.
	InstallManagerRequired = "service manager is required"

	InstallCreateDirFailedFmt = "failed to create directory %s: %w"
	InstallCopyFailedFmt      = "failed to copy %s to %s: %w"
	InstallWriteLauncherFmt   = "failed to write launcher %s: %w"
	InstallChmodLauncherFmt   = "failed to mark launcher %s executable: %w"
	InstallReloadFailedFmt    = "failed to reload the systemd unit catalogue: %w"
	InstallRenderLauncherFmt  = "failed to render launcher template: %w"
	InstallReadTemplateFmt    = "failed to read template %s: %w"

	InstallStepDirs      = "Creating installation directories..."
	InstallStepApp       = "Staging application and library sources..."
	InstallStepConfig    = "Staging configuration file..."
	InstallStepResources = "Staging D-Bus interface descriptor..."
	InstallStepLauncher  = "Generating launcher script..."
	InstallStepPolicy    = "Registering D-Bus security policy..."
	InstallStepUnit      = "Registering systemd service unit..."
	InstallStepReload    = "Reloading systemd unit catalogue..."
)
