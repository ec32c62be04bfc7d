// Package systemd talks to the host init manager through the systemctl CLI.
package systemd

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/newdaynewburner/dnsserverd-installer/internal/messages"
)

// Manager exposes the init-manager operations the installer needs.
type Manager interface {
	// DaemonReload makes newly placed unit definitions visible to the init
	// system. It does not start or enable any unit.
	DaemonReload() error
}

// CtlManager implements Manager by invoking systemctl.
type CtlManager struct {
	// Stderr receives diagnostic output from systemctl. Nil discards it.
	Stderr io.Writer
}

// DaemonReload runs systemctl daemon-reload.
func (m CtlManager) DaemonReload() error {
	path, err := exec.LookPath("systemctl")
	if err != nil {
		return fmt.Errorf(messages.SystemdNotFoundFmt, err)
	}
	cmd := exec.Command(path, "daemon-reload")
	if m.Stderr != nil {
		cmd.Stderr = m.Stderr
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf(messages.SystemdReloadCommandFmt, err)
	}
	return nil
}
