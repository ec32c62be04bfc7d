package messages

// System messages for low-level operations.
const (
	// FsutilSourceNotRegularFmt indicates a copy source is not a regular file.
	FsutilSourceNotRegularFmt = "source %s is not a regular file"
	// FsutilSourceNotDirFmt indicates a tree-copy source is not a directory.
	FsutilSourceNotDirFmt = "source %s is not a directory"

	// SystemdReloadCommandFmt wraps a failed systemctl invocation.
	SystemdReloadCommandFmt = "systemctl daemon-reload: %w"
	// SystemdNotFoundFmt indicates systemctl is absent from PATH.
	SystemdNotFoundFmt = "systemctl not found on PATH: %w"
)
