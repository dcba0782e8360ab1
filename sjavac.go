package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/NickyBoy89/sjavac/diagnostic"
	"github.com/NickyBoy89/sjavac/dot"
	"github.com/NickyBoy89/sjavac/lines"
	"github.com/NickyBoy89/sjavac/parsing"
	"github.com/NickyBoy89/sjavac/typecheck"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Outcome is the result of validating a file, and the exit code of the program
type Outcome int

const (
	Valid Outcome = iota
	Invalid
	Unreadable
)

// Validate runs both passes over a file's lines
func Validate(source []string, config Config) (*typecheck.Info, error) {
	classifier := lines.Classifier{StrictComments: config.StrictComments}
	program, err := parsing.NewFirstPass(classifier).Run(source)
	if err != nil {
		return nil, err
	}
	return typecheck.Check(program)
}

// ValidateFile reads and validates the file at path
func ValidateFile(path string, config Config) (Outcome, *typecheck.Info, error) {
	file, err := parsing.ReadFile(path)
	if err != nil {
		return Unreadable, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := Validate(file.Lines, config)
	if err != nil {
		return Invalid, nil, err
	}
	return Valid, info, nil
}

// WriteCallGraph writes the methods of a valid program and the calls between
// them as a dot graph
func WriteCallGraph(w io.Writer, name string, info *typecheck.Info) error {
	graph := dot.New(name)
	for _, method := range info.Methods {
		calls := info.Calls[method]
		if len(calls) == 0 {
			graph.Subgraph("leaves").AddNode(method)
			continue
		}
		for _, called := range calls {
			graph.AddEdge(method, called)
		}
	}
	_, err := graph.WriteTo(w)
	return err
}

func writeCallGraphFile(path, name string, info *typecheck.Info) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating call graph: %w", err)
	}
	if err := WriteCallGraph(out, name, info); err != nil {
		out.Close()
		return fmt.Errorf("writing call graph: %w", err)
	}
	return out.Close()
}

// categoryOf separates errors in the shape of the file from errors in what
// it means
func categoryOf(kind diagnostic.Kind) string {
	if kind.Structural() {
		return "syntax"
	}
	return "semantic"
}

type options struct {
	configPath     string
	logLevel       string
	logFormat      string
	strictComments bool
	dotPath        string
}

// resolveConfig layers the flags that were set over the config file
func (opts options) resolveConfig(flags *pflag.FlagSet) (Config, error) {
	config, err := LoadConfig(opts.configPath)
	if err != nil {
		return config, err
	}
	if flags.Changed("log-level") {
		config.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		config.LogFormat = opts.logFormat
	}
	if flags.Changed("strict-comments") {
		config.StrictComments = opts.strictComments
	}
	return config, nil
}

func newRootCommand(stdout, stderr io.Writer, outcome *Outcome) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "sjavac [flags] <file>",
		Short: "Checks that an S-Java source file is legal",
		Long: `sjavac checks that an S-Java source file is legal, and prints 0 if it is,
1 if it is not, or 2 if the file could not be read.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.resolveConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if err := config.ConfigureLogger(log.StandardLogger(), stderr); err != nil {
				return err
			}

			result, info, err := ValidateFile(args[0], config)
			switch {
			case result == Unreadable:
				log.WithField("file", args[0]).Error(err)
			case err != nil:
				fields := log.Fields{"file": args[0]}
				var diag *diagnostic.Error
				if errors.As(err, &diag) {
					fields["kind"] = diag.Kind.String()
					fields["line"] = diag.Line
					fields["category"] = categoryOf(diag.Kind)
				}
				log.WithFields(fields).Error(err)
			default:
				log.WithFields(log.Fields{
					"file":    args[0],
					"methods": len(info.Methods),
				}).Info("File is valid")

				if opts.dotPath != "" {
					if err := writeCallGraphFile(opts.dotPath, args[0], info); err != nil {
						// The file was valid, but the run failed
						fmt.Fprintln(stdout, int(Invalid))
						return err
					}
				}
			}

			*outcome = result
			fmt.Fprintln(stdout, int(result))
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML file to read settings from")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Minimum level of log messages (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Format of log messages (text or json)")
	flags.BoolVar(&opts.strictComments, "strict-comments", false, "Only accept comments that start at the beginning of a line")
	flags.StringVar(&opts.dotPath, "dot", "", "Write the call graph of a valid file to this path")

	return cmd
}

// run executes the command line, and returns the exit code
func run(args []string, stdout, stderr io.Writer) int {
	// Anything that stops the command before the file is checked, such as a
	// usage error, counts as an invalid run
	outcome := Invalid
	cmd := newRootCommand(stdout, stderr, &outcome)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		outcome = Invalid
	}
	return int(outcome)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
