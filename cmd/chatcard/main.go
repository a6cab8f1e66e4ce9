// Package main provides the chatcard CLI: it turns YAML message manifests
// into chat webhook JSON bodies.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reoring/chatcard"
	"github.com/reoring/chatcard/i18n"
	"github.com/reoring/chatcard/manifest"
)

var version = "dev"

type app struct {
	lang    string
	verbose bool
	log     *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "chatcard: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "chatcard",
		Short:         "Render chat webhook messages from YAML manifests",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			i18n.SetLanguage(a.lang)
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}
	root.PersistentFlags().StringVar(&a.lang, "lang", os.Getenv("CHATCARD_LANG"),
		"message language for diagnostics: en or ja (env: CHATCARD_LANG)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newTreeCmd(a))
	root.AddCommand(newSchemaCmd(a))
	return root
}

// newLogger writes JSON log lines to w at debug level. It is silent unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey:  "message",
		LevelKey:    "level",
		EncodeLevel: zapcore.CapitalLevelEncoder,
		TimeKey:     "time",
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		indent  string
		compact bool
	)
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Print the JSON webhook body for a manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if indent == "" && !compact && isTerminal(out) {
				indent = "  "
			}
			var body []byte
			if indent != "" && !compact {
				body, err = chatcard.MarshalIndent(msg, "", indent)
			} else {
				body, err = chatcard.Marshal(msg)
			}
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			a.log.Debug("rendered message", zap.Int("bytes", len(body)))
			_, err = fmt.Fprintln(out, string(body))
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&indent, "indent", os.Getenv("CHATCARD_INDENT"), "indent string for pretty output (env: CHATCARD_INDENT)")
	flags.BoolVar(&compact, "compact", false, "always print compact JSON")
	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file|-]",
		Short: "Print an outline of the message tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTree(msg))
			return err
		},
	}
}

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the message format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := json.Marshal(chatcard.MessageSchema())
			if err != nil {
				return err
			}
			var b bytes.Buffer
			if err := json.Indent(&b, raw, "", "  "); err != nil {
				return err
			}
			a.log.Debug("rendered schema", zap.Int("entities", len(chatcard.EntityNames())))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

// load reads the manifest named by args (stdin when absent or "-") and
// decodes it. Decode issues are listed on stderr.
func (a *app) load(cmd *cobra.Command, args []string) (chatcard.Message, error) {
	var (
		r    io.Reader = cmd.InOrStdin()
		name           = "-"
	)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}
	a.log.Debug("decoding manifest", zap.String("source", name))
	msg, err := manifest.DecodeReader(r)
	if err != nil {
		if iss, ok := chatcard.AsIssues(err); ok {
			printIssues(cmd.ErrOrStderr(), name, iss)
			return nil, fmt.Errorf("%s: %d issue(s)", name, len(iss))
		}
		return nil, err
	}
	return msg, nil
}

func printIssues(w io.Writer, name string, iss chatcard.Issues) {
	for _, it := range iss {
		loc := name
		if line, ok := it.Params["line"].(int); ok {
			loc = fmt.Sprintf("%s:%d", name, line)
		}
		msg := it.Message
		if it.Hint != "" {
			msg += " (" + it.Hint + ")"
		}
		fmt.Fprintf(w, "%s: %s: %s: %s\n", loc, it.Path, it.Code, msg) //nolint:errcheck
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
