// Package install performs the dnsserverd host-provisioning sequence.
package install

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/newdaynewburner/dnsserverd-installer/internal/launchers"
	"github.com/newdaynewburner/dnsserverd-installer/internal/messages"
	"github.com/newdaynewburner/dnsserverd-installer/internal/systemd"
)

// Options controls installer behavior.
type Options struct {
	Layout  Layout
	Bundle  Bundle
	System  System
	Manager systemd.Manager
	// Out receives operator-facing progress lines. Nil discards them.
	Out io.Writer
}

type installer struct {
	layout Layout
	bundle Bundle
	sys    System
	mgr    systemd.Manager
	out    io.Writer
}

// Run executes the provisioning sequence: privilege check, directory
// creation, file staging, launcher generation, policy and unit registration,
// and a systemd catalogue reload. The sequence is strictly linear; the first
// failing operation aborts the run and no cleanup is attempted. Re-running a
// successful installation reproduces the identical filesystem state.
func Run(opts Options) error {
	sys := opts.System
	if sys == nil {
		return fmt.Errorf(messages.InstallSystemRequired)
	}
	if opts.Manager == nil {
		return fmt.Errorf(messages.InstallManagerRequired)
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	// Privilege is verified before anything else; no side effect may occur
	// under an insufficient identity.
	if sys.Geteuid() != 0 {
		return ErrPermissionDenied
	}

	inst := &installer{
		layout: opts.Layout,
		bundle: opts.Bundle,
		sys:    sys,
		mgr:    opts.Manager,
		out:    out,
	}
	steps := []func() error{
		inst.createDirs,
		inst.stageApplication,
		inst.stageConfig,
		inst.stageResources,
		inst.writeLauncher,
		inst.registerPolicy,
		inst.registerUnit,
		inst.reloadManager,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (inst *installer) announce(msg string) {
	// Progress lines are operator-facing only; write failures must not abort
	// the run.
	_, _ = fmt.Fprintln(inst.out, msg)
}

func (inst *installer) createDirs() error {
	inst.announce(messages.InstallStepDirs)
	dirs := []string{
		inst.layout.AppDir,
		inst.layout.ConfigDir,
		inst.layout.ResourceDir,
	}
	for _, dir := range dirs {
		if err := inst.sys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
		}
	}
	return nil
}

func (inst *installer) stageApplication() error {
	inst.announce(messages.InstallStepApp)
	entryDst := filepath.Join(inst.layout.AppDir, entryName)
	if err := inst.sys.CopyFile(inst.bundle.Entry, entryDst, 0o644); err != nil {
		return fmt.Errorf(messages.InstallCopyFailedFmt, inst.bundle.Entry, entryDst, err)
	}
	libDst := filepath.Join(inst.layout.AppDir, libDirName)
	if err := inst.sys.CopyTree(inst.bundle.LibDir, libDst); err != nil {
		return fmt.Errorf(messages.InstallCopyFailedFmt, inst.bundle.LibDir, libDst, err)
	}
	return nil
}

func (inst *installer) stageConfig() error {
	inst.announce(messages.InstallStepConfig)
	dst := filepath.Join(inst.layout.ConfigDir, configName)
	if err := inst.sys.CopyFile(inst.bundle.ConfigFile, dst, 0o644); err != nil {
		return fmt.Errorf(messages.InstallCopyFailedFmt, inst.bundle.ConfigFile, dst, err)
	}
	return nil
}

func (inst *installer) stageResources() error {
	inst.announce(messages.InstallStepResources)
	dst := filepath.Join(inst.layout.ResourceDir, interfaceName)
	if err := inst.sys.CopyFile(inst.bundle.InterfaceDescriptor, dst, 0o644); err != nil {
		return fmt.Errorf(messages.InstallCopyFailedFmt, inst.bundle.InterfaceDescriptor, dst, err)
	}
	return nil
}

func (inst *installer) writeLauncher() error {
	inst.announce(messages.InstallStepLauncher)
	entry := filepath.Join(inst.layout.AppDir, entryName)
	return launchers.WriteLauncher(inst.sys, inst.layout.LauncherPath, entry)
}

func (inst *installer) registerPolicy() error {
	inst.announce(messages.InstallStepPolicy)
	if err := inst.sys.CopyFile(inst.bundle.PolicyFile, inst.layout.PolicyPath, 0o644); err != nil {
		return fmt.Errorf(messages.InstallCopyFailedFmt, inst.bundle.PolicyFile, inst.layout.PolicyPath, err)
	}
	return nil
}

func (inst *installer) registerUnit() error {
	inst.announce(messages.InstallStepUnit)
	if err := inst.sys.CopyFile(inst.bundle.UnitFile, inst.layout.UnitPath, 0o644); err != nil {
		return fmt.Errorf(messages.InstallCopyFailedFmt, inst.bundle.UnitFile, inst.layout.UnitPath, err)
	}
	return nil
}

func (inst *installer) reloadManager() error {
	inst.announce(messages.InstallStepReload)
	if err := inst.mgr.DaemonReload(); err != nil {
		return fmt.Errorf(messages.InstallReloadFailedFmt, err)
	}
	return nil
}
