// Package launchers generates the executable shim that hands off to the
// deployed daemon.
package launchers

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/newdaynewburner/dnsserverd-installer/internal/messages"
	"github.com/newdaynewburner/dnsserverd-installer/internal/templates"
)

// Interpreter is the named interpreter the shim resolves from the host PATH
// via /usr/bin/env. The deployed daemon is a Python 3 application.
const Interpreter = "python3"

const shimTemplatePath = "launcher/dnsserverd.sh.tmpl"

// System is the minimal interface needed to install a launcher.
type System interface {
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Chmod(name string, mode os.FileMode) error
}

type shimData struct {
	Interpreter string
	Entry       string
}

// Render returns the shim script content that invokes entry through the
// interpreter, forwarding all arguments and the child exit status.
func Render(entry string) ([]byte, error) {
	data, err := templates.Read(shimTemplatePath)
	if err != nil {
		return nil, fmt.Errorf(messages.InstallReadTemplateFmt, shimTemplatePath, err)
	}
	tmpl, err := template.New("launcher").Parse(string(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, shimData{Interpreter: Interpreter, Entry: entry}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLauncher generates the shim at path, unconditionally replacing any
// prior version, and marks it executable for all principals.
func WriteLauncher(sys System, path string, entry string) error {
	content, err := Render(entry)
	if err != nil {
		return fmt.Errorf(messages.InstallRenderLauncherFmt, err)
	}
	if err := sys.WriteFileAtomic(path, content, 0o755); err != nil {
		return fmt.Errorf(messages.InstallWriteLauncherFmt, path, err)
	}
	if err := sys.Chmod(path, 0o755); err != nil {
		return fmt.Errorf(messages.InstallChmodLauncherFmt, path, err)
	}
	return nil
}
