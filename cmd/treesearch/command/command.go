// Package command implements the treesearch CLI.
package command

import (
	"context"
	"errors"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ReturnCodeSuccess is passed to os.Exit() when no error is reported.
	ReturnCodeSuccess = 0
	// ReturnCodeError is passed to os.Exit() if a command reports an error.
	ReturnCodeError = 1
)

var ErrInvalidArgs = errors.New("arguments invalid")

func Run(ctx context.Context, outWriter, errWriter io.Writer, args []string) int {
	cmd := CobraRoot()
	cmd.SetOut(outWriter)
	cmd.SetErr(errWriter)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return ReturnCodeError
	}

	return ReturnCodeSuccess
}

func CobraRoot() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:          "treesearch",
		Short:        "solve search problems with uninformed and informed tree search",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"log search progress to stderr; repeat for per-node detail")

	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		log := newLogger(cmd.ErrOrStderr(), verbosity)
		cmd.SetContext(logr.NewContext(cmd.Context(), log))
	}

	cmd.AddCommand(
		(&Route{}).CobraCommand(),
		(&Puzzle{}).CobraCommand(),
	)

	return cmd
}

// newLogger logs to w at debug levels down to -verbosity, so that
// logr's V(n) is shown for every n <= verbosity.
func newLogger(w io.Writer, verbosity int) logr.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.Level(-verbosity),
	)
	return zapr.NewLogger(zap.New(core))
}
