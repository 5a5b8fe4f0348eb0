// Package logging builds the logrus logger shared by the CLI and catalog.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/libraflow/pkg/types"
)

const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// New returns a logger writing to out at the named level, using a JSON
// formatter when format is "json" and a text formatter otherwise.
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(lvl)
	logger.SetOutput(out)

	if format == types.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	}
	return logger, nil
}
