package install

import (
	"errors"

	"github.com/newdaynewburner/dnsserverd-installer/internal/messages"
)

// ErrPermissionDenied is returned when the invoking identity is not root.
// It is detected before any side effect; the filesystem is untouched when a
// run fails with this error.
var ErrPermissionDenied = errors.New(messages.InstallNotRoot)
