package executor

import (
	"os/exec"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides a module to inject using fx.
var Module = fx.Provide(func(logger *zap.SugaredLogger) Executor {
	return NewExecutor(WithLogger(logger))
})

// Executor wraps the launching of "os/exec".Cmd's to allow adding logs to
// each launch and makes it easier to test.
type Executor interface {
	// Start logs and starts the Cmd specified without waiting for it to exit.
	// The process is reaped in the background and its exit status is only logged.
	Start(cmd *exec.Cmd) error
}

// executorImp implements Executor
type executorImp struct {
	Logger *zap.SugaredLogger
	// StartFunc may be nil to use executorImp in tests.
	StartFunc func(cmd *exec.Cmd) error
	// WaitFunc is called in its own goroutine once StartFunc succeeds.
	WaitFunc func(cmd *exec.Cmd) error
}

// Option defines options to customize executorImp's behavior
type Option func(*executorImp)

// WithLogger overrides the default noop logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(executor *executorImp) {
		executor.Logger = logger
	}
}

// WithStartFunc provides customized start behavior for executorImp
func WithStartFunc(startFunc func(cmd *exec.Cmd) error) Option {
	return func(executor *executorImp) {
		executor.StartFunc = startFunc
	}
}

// WithWaitFunc provides customized reaping behavior for executorImp
func WithWaitFunc(waitFunc func(cmd *exec.Cmd) error) Option {
	return func(executor *executorImp) {
		executor.WaitFunc = waitFunc
	}
}

// NewExecutor creates a new executorImp with a noop logger and functions that start a real process.
func NewExecutor(opts ...Option) Executor {
	executor := &executorImp{
		Logger:    zap.NewNop().Sugar(),
		StartFunc: func(cmd *exec.Cmd) error { return cmd.Start() },
		WaitFunc:  func(cmd *exec.Cmd) error { return cmd.Wait() },
	}
	for _, opt := range opts {
		opt(executor)
	}
	return executor
}

// Start logs the Path/Args and calls StartFunc if it is set.
func (l *executorImp) Start(cmd *exec.Cmd) error {
	l.logCommand(cmd)

	if l.StartFunc == nil {
		l.Logger.Warn("missing StartFunc - skipped execution")
		return nil
	}

	if err := l.StartFunc(cmd); err != nil {
		return err
	}

	if l.WaitFunc != nil {
		go l.reap(cmd)
	}
	return nil
}

func (l *executorImp) reap(cmd *exec.Cmd) {
	err := l.WaitFunc(cmd)
	l.Logger.Debugw("Exited", "Path", cmd.Path, "error", err)
}

// Logs the command specified: Path, Dir, Args
func (l *executorImp) logCommand(cmd *exec.Cmd) {
	var args []string
	if len(cmd.Args) > 1 {
		args = cmd.Args[1:] // First arg is always the command itself
	}
	l.Logger.Infow("Exec",
		"Path", cmd.Path,
		"Dir", cmd.Dir,
		"Args", args,
	)
}
