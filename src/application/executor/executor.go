package executor

import (
	"context"
	"os/exec"
)

var _ Executor = BinaryFileExecutor{}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Executor
type Executor interface {
	CommandContext(ctx context.Context, name string, arg ...string) Command
}

//counterfeiter:generate . Command
type Command interface {
	CombinedOutput() ([]byte, error)
}

// the only reason this is here is to create an interface for testing
type BinaryFileExecutor struct{}

func (b BinaryFileExecutor) CommandContext(ctx context.Context, name string, arg ...string) Command {
	return exec.CommandContext(ctx, name, arg...)
}
