package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/libraflow/internal/catalog"
	"github.com/mesh-intelligence/libraflow/internal/logging"
	"github.com/mesh-intelligence/libraflow/internal/metrics"
	"github.com/mesh-intelligence/libraflow/pkg/types"
)

func newShellCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive catalog session",
		Long: `Shell reads commands from standard input, one per line, and runs them
against a catalog that lives until the session ends. Type "help" inside the
shell for the list of commands. The session ends on "exit" or end of input.

Example:
  libraflow shell
  libraflow shell --json < script.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			sess, err := newSession(cfg, logger, cmd.OutOrStdout())
			if err != nil {
				return sysError(err)
			}
			return sess.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// session is one catalog lifetime. Commands run one at a time, which is
// the only serialisation the catalog gets.
type session struct {
	id      uuid.UUID
	cfg     types.Config
	log     logrus.FieldLogger
	out     io.Writer
	catalog *catalog.Catalog
	metrics *metrics.Collector
	done    bool
}

func newSession(cfg types.Config, logger *logrus.Logger, out io.Writer) (*session, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	log := logger.WithField("session", id.String())
	m := metrics.NewCollector()

	return &session{
		id:      id,
		cfg:     cfg,
		log:     log,
		out:     out,
		catalog: catalog.New(catalog.WithLogger(log), catalog.WithObserver(m)),
		metrics: m,
	}, nil
}

// run reads lines from in until EOF, an exit command or ctx is done.
// Bad input is reported and the loop continues.
func (s *session) run(ctx context.Context, in io.Reader) error {
	s.log.Info("session started")
	defer s.log.WithField("books", s.catalog.Len()).Info("session ended")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, in, maxLineBytes)

	for !s.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.cfg.Prompt != "" {
			fmt.Fprint(s.out, s.cfg.Prompt)
		}

		var ln inputLine
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return ctx.Err()
		case ln, ok = <-lines:
		}
		if !ok {
			return nil
		}
		if errors.Is(ln.err, errLineTooLong) {
			fmt.Fprintf(s.out, "Error: %s (limit %d bytes)\n", ln.err, maxLineBytes)
			continue
		}
		if ln.err != nil {
			return sysError(fmt.Errorf("read input: %w", ln.err))
		}

		line := strings.TrimSpace(ln.text)
		if line == "" {
			continue
		}
		args, err := splitArgs(line)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %s\n", err)
			continue
		}
		s.exec(ctx, args)
	}
	return nil
}

// exec runs one command line through a fresh command tree so no flag
// state leaks between lines.
func (s *session) exec(ctx context.Context, args []string) {
	root := s.newCommandTree()
	root.SetArgs(args)
	root.SetOut(s.out)
	root.SetErr(s.out)

	if err := root.ExecuteContext(ctx); err != nil {
		s.log.WithField("command", args[0]).WithError(err).Debug("command failed")
		fmt.Fprintf(s.out, "Error: %s\n", err)
	}
}

func (s *session) newCommandTree() *cobra.Command {
	root := &cobra.Command{
		Use:           "session",
		Short:         "LibraFlow session commands",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.AddCommand(
		s.newAddCmd(),
		s.newRemoveCmd(),
		s.newBorrowCmd(),
		s.newSearchCmd(),
		s.newRecentCmd(),
		s.newHistoryCmd(),
		s.newListCmd(),
		s.newStatsCmd(),
		s.newExitCmd(),
	)
	return root
}
