package cli

import (
	"fmt"
	"maps"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"feedpipe/pipe"
)

const defaultLimit = 100

type runOptions struct {
	confPath  string
	src       string
	envFile   string
	inputs    []string
	terminals []string
	limit     int
	test      bool
}

func newRunCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <stage>",
		Short: "Run a single pipeline stage",
		Long: `Run a single pipeline stage and print the values it produces.

The stage reads its configuration from --conf (YAML). Feed entries from
--src become its input. Each --terminal name=value registers a terminal that
yields value on every read. User inputs come from --env-file and --input.

Some stages never end (count, textinput); at most --limit values are
printed.

Stages: ` + strings.Join(pipe.Names(), ", "),
		Example: `  feedpipe run count --src feed.xml --limit 1
  feedpipe run sort --src feed.xml --conf sort.yaml
  feedpipe run textinput --conf input.yaml --input search=golang --limit 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.confPath, "conf", "c", "", "Stage configuration file (YAML)")
	cmd.Flags().StringVar(&opts.src, "src", "", "Feed file or URL whose entries are the stage input")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "File of NAME=value user inputs")
	cmd.Flags().StringArrayVar(&opts.inputs, "input", nil, "User input as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.terminals, "terminal", nil, "Terminal as name=value (repeatable)")
	cmd.Flags().IntVar(&opts.limit, "limit", defaultLimit, "Maximum number of values to print (0 for all)")
	cmd.Flags().BoolVar(&opts.test, "test", false, "Use input defaults instead of supplied inputs")

	return cmd
}

func runStage(cmd *cobra.Command, name string, opts runOptions) error {
	stage, err := pipe.Lookup(name)
	if err != nil {
		return err
	}

	conf := pipe.Conf{}
	if opts.confPath != "" {
		conf, err = pipe.LoadConf(opts.confPath)
		if err != nil {
			return err
		}
	}

	inputs, err := collectInputs(opts.envFile, opts.inputs)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	ctxOpts := []pipe.Option{
		pipe.WithLogger(logger),
		pipe.WithInputs(inputs),
		pipe.WithParent(cmd.Context()),
	}

	if opts.test {
		ctxOpts = append(ctxOpts, pipe.WithTest())
	}

	if getVerboseFlag(cmd) {
		ctxOpts = append(ctxOpts, pipe.WithVerbose())
	}

	ctx := pipe.NewContext(ctxOpts...)

	terms := pipe.NewTerminals()
	defer terms.Close()

	for _, kv := range opts.terminals {
		k, v, err := splitPair(kv)
		if err != nil {
			return fmt.Errorf("--terminal: %w", err)
		}

		terms.Add(k, pipe.Repeat(v))
	}

	diags := conf.Validate(name, terms.Names())
	for _, i := range diags.Infos {
		logger.Verbose("%s", i.String())
	}

	for _, w := range diags.Warnings {
		logger.Info("warning: %s", w.String())
	}

	if err := diags.Error(); err != nil {
		return err
	}

	var input pipe.Seq
	if opts.src != "" {
		doc, err := loadDocument(cmd, opts.src)
		if err != nil {
			return err
		}

		input = pipe.FromSlice(feedEntries(doc))
	}

	logger.Verbose("run %s: stage %s", ctx.RunID, name)

	values, runErr := pipe.Take(stage(ctx, input, conf, terms), opts.limit)
	if err := printValue(cmd, values); err != nil {
		return err
	}

	return runErr
}

// collectInputs merges inputs from envFile with name=value pairs; pairs win.
func collectInputs(envFile string, pairs []string) (map[string]string, error) {
	inputs := map[string]string{}

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}

		maps.Copy(inputs, values)
	}

	for _, kv := range pairs {
		k, v, err := splitPair(kv)
		if err != nil {
			return nil, fmt.Errorf("--input: %w", err)
		}

		inputs[k] = v
	}

	return inputs, nil
}

func splitPair(kv string) (string, string, error) {
	k, v, ok := strings.Cut(kv, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return "", "", fmt.Errorf("invalid format %q, expected name=value", kv)
	}

	return strings.TrimSpace(k), v, nil
}
