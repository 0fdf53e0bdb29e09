// Package shell provides the external process runner adapter.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the node's command with its declared environment merged
// over the process environment. A PATH entry in the node environment is
// prepended to the system PATH rather than replacing it, so toolchain
// executables shadow system ones without hiding them.
func (e *Executor) Execute(ctx context.Context, node *domain.TaskNode) error {
	if len(node.Command) == 0 {
		return nil
	}

	name := node.Command[0]
	args := node.Command[1:]

	cmdEnv := resolveEnvironment(os.Environ(), node.Env)

	// Resolve a bare command name against the merged PATH, not the
	// inherited one.
	executable := name
	if !filepath.IsAbs(name) && !strings.Contains(name, string(os.PathSeparator)) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // command comes from the task graph
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	if node.WorkingDir != "" {
		cmd.Dir = node.WorkingDir
	}
	cmd.Env = cmdEnv

	cmd.Stdout = outputWriter(ctx, &logWriter{logger: e.logger, level: "info"}, false)
	cmd.Stderr = outputWriter(ctx, &logWriter{logger: e.logger, level: "error"}, true)

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1 // unknown or signal
		}

		failure := zerr.Wrap(err, "command failed")
		failure = zerr.With(failure, "command", strings.Join(node.Command, " "))
		return zerr.With(failure, "exit_code", exitCode)
	}

	return nil
}

// outputWriter tees process output into the task's telemetry vertex
// when the scheduler embedded one in the context.
func outputWriter(ctx context.Context, logs io.Writer, stderr bool) io.Writer {
	vertex, ok := ports.VertexFromContext(ctx)
	if !ok {
		return logs
	}
	if stderr {
		return io.MultiWriter(logs, vertex.Stderr())
	}
	return io.MultiWriter(logs, vertex.Stdout())
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := string(p)
	lines := strings.Split(strings.TrimSuffix(msg, "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

// resolveEnvironment merges the node environment over the system one.
func resolveEnvironment(sysEnv []string, nodeEnv map[string]string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range nodeEnv {
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				envMap[k] = v + string(os.PathListSeparator) + sysPath
			} else {
				envMap[k] = v
			}
			continue
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the
// PATH entry of the given environment.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
