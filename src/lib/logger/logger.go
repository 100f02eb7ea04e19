package logger

import (
	"freecast-workers/src/lib/cerr"
	"freecast-workers/src/lib/env"
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
)

// Configure installs the global apex/log handler. Log output never goes to
// stdout so it can't be confused with command output.
func Configure(environment env.Environment, level string, out io.Writer) error {
	parsedLevel, err := log.ParseLevel(level)
	if err != nil {
		return cerr.Field("level", level).Wrap(err).Error("Failed to parse log level")
	}

	switch environment {
	case env.Production:
		log.SetHandler(json.New(out))
	default:
		log.SetHandler(cli.New(out))
	}

	log.SetLevel(parsedLevel)
	return nil
}
