// Package cmd holds the sailormouth cobra commands
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sailormouth/internal/core/version"
	"sailormouth/internal/modkit"
	"sailormouth/internal/platform/config"
	perr "sailormouth/internal/platform/errors"
	"sailormouth/internal/platform/logger"
	"sailormouth/internal/services/profile/domain"
	profilemod "sailormouth/internal/services/profile/module"
)

// Env carries the process edges so tests can swap them
type Env struct {
	Out    io.Writer
	Err    io.Writer
	Cfg    config.Conf
	Source domain.SourcePort // nil means the reddit client
}

type flags struct {
	user     string
	limit    int
	dict     string
	listsDir string
	sort     string
	verbose  bool
	color    bool
	fold     bool
	logLevel string
}

// NewRootCmd builds the root command against env
func NewRootCmd(env Env) *cobra.Command {
	var f flags
	c := &cobra.Command{
		Use:           "sailormouth -u <user>",
		Short:         "Profile a reddit user's word usage",
		Long:          "Scans a reddit user's recent comments for target words and charts the hits per subreddit.",
		Example:       "  sailormouth -u spez -l 250 -s dec -v -c",
		Version:       version.Info("sailormouth").Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), env, f, cmd.Flags().Changed("limit"))
		},
	}
	c.SetOut(env.Out)
	c.SetErr(env.Err)

	fl := c.Flags()
	fl.StringVarP(&f.user, "user", "u", "", "reddit username to analyze")
	fl.IntVarP(&f.limit, "limit", "l", 100, fmt.Sprintf("number of comments to profile, reddit rarely serves more than %d", domain.DocumentedLimit))
	fl.StringVarP(&f.dict, "dict", "d", "bad_words.txt", "target word list, a name in the lists dir or a path (.txt or .yaml)")
	fl.StringVar(&f.listsDir, "lists-dir", "", "directory bare --dict names resolve against (default lists)")
	fl.StringVarP(&f.sort, "sort", "s", "", "sort the graph and breakdown: inc or dec")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "include a breakdown for each subreddit")
	fl.BoolVarP(&f.color, "color", "c", false, "intensity colored graph (needs ANSI colors)")
	fl.BoolVar(&f.fold, "fold", false, "aggressive normalization: unicode folding and leetspeak")
	fl.StringVar(&f.logLevel, "log-level", "", "log level written to stderr (default from LOG_LEVEL, else warn)")
	_ = c.MarkFlagRequired("user")

	return c
}

// Execute runs the root command wired to the real process
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd(Env{Out: os.Stdout, Err: os.Stderr, Cfg: config.New()}).ExecuteContext(ctx)
}

func run(ctx context.Context, env Env, f flags, limitSet bool) error {
	initLogger(env.Err, f.logLevel)
	log := logger.Named("cli")

	overrides := profilemod.Options{
		ListsDir: f.listsDir,
		Dict:     f.dict,
		Fold:     f.fold,
	}
	var opts []modkit.Option
	if env.Source != nil {
		opts = append(opts, modkit.WithPorts(domain.Ports{Source: env.Source}))
	}
	m, err := profilemod.New(modkit.Deps{Log: *log, Cfg: env.Cfg}, overrides, opts...)
	if err != nil {
		return err
	}

	in := domain.Input{
		User:    f.user,
		Sort:    f.sort,
		Verbose: f.verbose,
	}
	// an explicit --limit always wins, otherwise CORE_PROFILE_LIMIT applies
	if limitSet {
		in.Limit = f.limit
		if f.limit < 1 {
			return perr.WithField(perr.InvalidArgf("limit must be at least 1"), "limit")
		}
	}

	res, err := m.Runner().Run(ctx, in)
	if err != nil {
		return err
	}
	return Print(env.Out, res, f.verbose, f.color)
}

func initLogger(w io.Writer, level string) {
	opt := logger.FromEnv()
	if level != "" {
		opt.Level = level
	} else if os.Getenv("LOG_LEVEL") == "" {
		opt.Level = "warn"
	}
	opt.Service = "sailormouth"
	opt.Writer = w
	logger.Init(opt)
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeValidation, perr.ErrorCodeInvalidArgument:
		return 2
	case perr.ErrorCodeNotFound:
		return 3
	case perr.ErrorCodeSourceUnavailable, perr.ErrorCodeUnavailable, perr.ErrorCodeTooManyRequests:
		return 4
	case perr.ErrorCodeWordList:
		return 5
	default:
		return 1
	}
}
