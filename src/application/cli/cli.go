package cli

import (
	"context"
	"fmt"
	"freecast-workers/src/application/splitter"
	"io"
)

const Usage = "Usage: freecast-split <input_file_or_url>"

type ReferenceSplitter interface {
	SplitReference(ctx context.Context, reference string, maxBytes int64) (splitter.SplitResult, error)
}

// Run splits the single reference in args and prints each chunk path on
// its own line. A failure is reported once, on stderr. It returns the
// process exit code.
func Run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer, referenceSplitter ReferenceSplitter, maxBytes int64) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, Usage)
		return 1
	}

	result, err := referenceSplitter.SplitReference(ctx, args[0], maxBytes)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err.Error())
		return 1
	}

	for _, path := range result.Paths() {
		fmt.Fprintln(stdout, path)
	}

	return 0
}
