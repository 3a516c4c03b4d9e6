package maps

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
	"github.com/lifeline-app/lifeline/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
)

// ExecLauncher opens URIs with the host's default handler command
type ExecLauncher struct {
	goos     string
	lookPath func(string) (string, error)
}

var _ interfaces.Launcher = &ExecLauncher{}

// NewExecLauncher creates a launcher for the current OS
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
	}
}

// opener returns the OS handler command and its leading arguments
func (l *ExecLauncher) opener() []string {
	switch l.goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// CanLaunch reports whether the host has a handler command for the URI.
// The geo scheme has no registered handler outside xdg-based desktops, so it
// is only considered launchable there.
func (l *ExecLauncher) CanLaunch(ctx context.Context, uri string) bool {
	if strings.HasPrefix(uri, "geo:") && l.goos != "linux" {
		return false
	}

	opener := l.opener()
	if _, err := l.lookPath(opener[0]); err != nil {
		return false
	}
	return true
}

// Launch opens the URI with the host handler command
func (l *ExecLauncher) Launch(ctx context.Context, uri string) error {
	opener := l.opener()
	args := append(opener[1:], uri) // #nosec G204 - opener is a fixed OS command

	cmd := exec.CommandContext(ctx, opener[0], args...)
	if err := cmd.Start(); err != nil {
		return goerr.Wrap(err, "failed to launch URI",
			goerr.V("uri", uri), goerr.V("opener", opener[0]))
	}

	// Reap the handler process in the background. A nonzero exit only
	// produces a log entry; the launch outcome is already reported.
	async.Dispatch(ctx, func(context.Context) error {
		if err := cmd.Wait(); err != nil {
			return goerr.Wrap(err, "map URI handler exited with error", goerr.V("uri", uri))
		}
		return nil
	})

	return nil
}
