package dummy

import (
	"context"
	"fmt"
	"freecast-workers/src/application/executor"
	"os"
)

var _ executor.Executor = &FFmpegExecutor{}

func NewDummyFFmpegExecutor() *FFmpegExecutor {
	return &FFmpegExecutor{
		Unavailable: false,
	}
}

// FFmpegExecutor writes "<source contents>:<-ss>-<-to>" to the output path.
type FFmpegExecutor struct {
	Unavailable bool
}

type FFmpegCommand struct {
	Unavailable bool
	Args        []string
}

func (f *FFmpegExecutor) CommandContext(_ context.Context, _ string, arg ...string) executor.Command {
	return FFmpegCommand{
		Unavailable: f.Unavailable,
		Args:        arg,
	}
}

func getOptionValue(args []string, key string) (string, error) {
	for i, arg := range args {
		if arg == key && i+1 < len(args) {
			return args[i+1], nil
		}
	}

	return "", UnexpectedInput
}

func (f FFmpegCommand) CombinedOutput() ([]byte, error) {
	if f.Unavailable {
		return []byte("ffmpeg: command not found"), NetworkFailure
	}

	sourcePath, err := getOptionValue(f.Args, "-i")
	if err != nil {
		return nil, err
	}

	start, err := getOptionValue(f.Args, "-ss")
	if err != nil {
		return nil, err
	}

	end, err := getOptionValue(f.Args, "-to")
	if err != nil {
		return nil, err
	}

	outPath := f.Args[len(f.Args)-1]

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf("%s:%s-%s", string(source), start, end)
	if err := os.WriteFile(outPath, []byte(content), os.ModePerm); err != nil {
		return nil, err
	}

	return nil, nil
}
