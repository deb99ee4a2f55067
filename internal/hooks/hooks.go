// Package hooks runs user scripts at hook points such as post-sync.
//
// Scripts live in <hooks_dir>/<hook point>/ and run in name order. Only
// executable regular files are considered. Each script receives the
// process environment plus HRDESK_HOOK_POINT, HRDESK_HOOK_TIMESTAMP and
// the variables of the event.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/cristianoliveira/hrdesk/internal/colors"
	"github.com/cristianoliveira/hrdesk/internal/config"
	"github.com/cristianoliveira/hrdesk/internal/logging"
)

// PostSync runs after a kind was fetched and its snapshot replaced.
const PostSync = "post-sync"

// FailureMode decides what a failing script does to the remaining ones.
type FailureMode string

const (
	// FailureAbort stops at the first failing script and returns its error.
	FailureAbort FailureMode = "abort"
	// FailureWarn prints a warning and keeps going.
	FailureWarn FailureMode = "warn"
	// FailureIgnore only logs the failure.
	FailureIgnore FailureMode = "ignore"
)

const defaultTimeout = 30 * time.Second

// Runner executes hook scripts.
type Runner struct {
	Dir         string
	Timeout     time.Duration
	FailureMode FailureMode
	// Output receives the combined output of every script.
	Output io.Writer
	now    func() time.Time
}

// NewFromConfig creates a Runner from hooks_dir, hooks_timeout and
// hooks_failure_mode. hooks_dir defaults to <config_dir>/hooks.
func NewFromConfig() *Runner {
	dir := config.Get("hooks_dir", "")
	if dir == "" {
		dir = filepath.Join(config.Get("config_dir", ""), "hooks")
	}
	return &Runner{
		Dir:         dir,
		Timeout:     config.GetDuration("hooks_timeout", defaultTimeout),
		FailureMode: FailureMode(config.Get("hooks_failure_mode", string(FailureWarn))),
		Output:      os.Stderr,
	}
}

// Scripts returns the executable scripts of hookPoint sorted by name.
// A missing directory has no scripts.
func (r *Runner) Scripts(hookPoint string) ([]string, error) {
	dir := filepath.Join(r.Dir, hookPoint)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read hooks directory %s: %w", dir, err)
	}

	var scripts []string
	for _, e := range entries {
		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() || info.Mode()&0o111 == 0 {
			continue
		}
		scripts = append(scripts, filepath.Join(dir, e.Name()))
	}
	sort.Strings(scripts)
	return scripts, nil
}

// Run executes every script of hookPoint with env added to its environment.
// It returns an error only in abort mode or when the directory is unreadable.
func (r *Runner) Run(ctx context.Context, hookPoint string, env map[string]string) error {
	scripts, err := r.Scripts(hookPoint)
	if err != nil || len(scripts) == 0 {
		return err
	}

	now := time.Now
	if r.now != nil {
		now = r.now
	}
	environ := append(os.Environ(),
		"HRDESK_HOOK_POINT="+hookPoint,
		"HRDESK_HOOK_TIMESTAMP="+now().UTC().Format(time.RFC3339),
	)
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		environ = append(environ, k+"="+env[k])
	}

	logging.Debug("running hooks", "hook_point", hookPoint, "scripts", len(scripts))
	for _, script := range scripts {
		if err := r.runScript(ctx, script, environ); err != nil {
			name := filepath.Base(script)
			switch r.FailureMode {
			case FailureAbort:
				return fmt.Errorf("hook %s: %w", name, err)
			case FailureIgnore:
				logging.Debug("hook failed", "hook", name, "error", err.Error())
			default:
				colors.Warning(fmt.Sprintf("hook %s failed: %v", name, err))
			}
		}
	}
	return nil
}

func (r *Runner) runScript(ctx context.Context, script string, environ []string) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, script)
	cmd.Env = environ
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()

	if out.Len() > 0 && r.Output != nil {
		_, _ = r.Output.Write(out.Bytes())
	}
	logging.Info("hook finished",
		"hook", filepath.Base(script),
		"duration_ms", time.Since(start).Milliseconds(),
		"ok", err == nil,
	)
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("timed out after %s", timeout)
	}
	return err
}
