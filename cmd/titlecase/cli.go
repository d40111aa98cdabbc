package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inoxlang/titlecase/internal/cache"
	"github.com/inoxlang/titlecase/internal/config"
	"github.com/inoxlang/titlecase/internal/titlecase"
	"github.com/inoxlang/titlecase/internal/utils"
)

const (
	CONVERT_SUBCMD               = "convert"
	CHECK_SUBCMD                 = "check"
	INIT_CONFIG_SUBCMD           = "init-config"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"
	HELP_SUBCMD                  = "help"
)

var (
	SUBCOMMANDS = []string{
		CONVERT_SUBCMD, CHECK_SUBCMD, INIT_CONFIG_SUBCMD, HELP_SUBCMD,
		INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD,
	}

	HELP_SUBCMD_EQUIVALENTS = []string{"--help", "-help", "-h"}

	CLI_SUBCOMMAND_DESCRIPTIONS = [][2]string{
		{CONVERT_SUBCMD, "convert text to title case, the text is read from the arguments, the files matching -f or stdin (default command)"},
		{CHECK_SUBCMD, "report the lines (Markdown files: the headings) that are not in title case, exit with status 1 if any"},
		{INIT_CONFIG_SUBCMD, "create the configuration file (" + config.CONFIG_FILE_RELPATH + " in the user's config directory) if it does not exist"},
		{INSTALL_COMPLETIONS_SUBCMD, "install CLI completions by addding the completion command to the detected rc file (supported shells are bash, zsh and fish)"},
		{UNINSTALL_COMPLETIONS_SUBCMD, "uninstall CLI completions by removing the completion command from the detected rc file"},
		{HELP_SUBCMD, "show the general help or command-specific help"},
	}

	CLI_SUBCOMMAND_DESCRIPTION_MAP = map[string]string{}

	TITLECASE_CMD_HELP = "usage: " + COMMAND_NAME + " [command] [options] [text...]\n\ncommands:\n"
)

func init() {
	for _, entry := range CLI_SUBCOMMAND_DESCRIPTIONS {
		cmd, desc := entry[0], entry[1]
		CLI_SUBCOMMAND_DESCRIPTION_MAP[cmd] = desc
		TITLECASE_CMD_HELP += "\t" + cmd + " - " + desc + "\n"
	}
	TITLECASE_CMD_HELP += "\nType `" + COMMAND_NAME + " help <command>` to get command-specific help.\n"
}

// moveFlagsStart moves the flags and their values before the positional arguments: `check docs/*.md -json`
// is parsed as `check -json docs/*.md`. The arguments following "--" are not moved.
func moveFlagsStart(flags *flag.FlagSet, args []string) []string {
	var flagArgs, positionalArgs []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionalArgs = append([]string{"--"}, append(positionalArgs, args[i+1:]...)...)
			break
		}

		if len(arg) < 2 || arg[0] != '-' {
			positionalArgs = append(positionalArgs, arg)
			continue
		}

		flagArgs = append(flagArgs, arg)

		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := flags.Lookup(name); f != nil && !isBoolFlag(f) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}

	return append(flagArgs, positionalArgs...)
}

func isBoolFlag(f *flag.Flag) bool {
	boolFlag, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && boolFlag.IsBoolFlag()
}

func showHelp(flags *flag.FlagSet, args []string, out io.Writer) bool {
	//only show help
	if slices.ContainsFunc(args, func(arg string) bool { return slices.Contains(HELP_SUBCMD_EQUIVALENTS, arg) }) {

		cmd := flags.Name()
		if desc, ok := CLI_SUBCOMMAND_DESCRIPTION_MAP[cmd]; ok {
			fmt.Fprintln(out, desc)
		}

		flags.SetOutput(out)
		fmt.Fprint(out, "\noptions:\n")
		flags.PrintDefaults()

		return true
	}

	return false
}

type stringListFlag []string

func (l *stringListFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *stringListFlag) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// commonOptions are the options shared by the convert and check subcommands.
type commonOptions struct {
	configPath    string
	logLevel      string
	abbreviations string
	smallWords    string
	cacheSize     int
}

func (o *commonOptions) register(flags *flag.FlagSet) {
	flags.StringVar(&o.configPath, "config", "", "path of the configuration file, defaults to "+config.CONFIG_FILE_RELPATH+" in the XDG config directories")
	flags.StringVar(&o.logLevel, "log-level", "", "log level (trace, debug, info, warn, error), overrides the configuration")
	flags.StringVar(&o.abbreviations, "abbrev", "", "comma-separated words that are always written as given (e.g. TCP,iOS)")
	flags.StringVar(&o.smallWords, "small", "", "comma-separated words to add to the small words (e.g. with,from)")
	flags.IntVar(&o.cacheSize, "cache-size", -1, "maximum number of title-cased lines kept in memory, overrides the configuration")
}

type environment struct {
	config config.Config
	logger zerolog.Logger
	titler *cache.TitleCache
}

// load reads the configuration, applies the options and creates the logger and the title cache.
func (o *commonOptions) load(errW io.Writer) (*environment, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	cfg.SmallWords = append(cfg.SmallWords, utils.SplitCommaList(o.smallWords)...)
	cfg.Abbreviations = append(cfg.Abbreviations, utils.SplitCommaList(o.abbreviations)...)

	if o.cacheSize >= 0 {
		cacheSize := o.cacheSize
		cfg.CacheSize = &cacheSize
	}

	logger := zerolog.New(errW).Level(level).With().Timestamp().Logger()
	if cfg.Path != "" {
		logger.Debug().Str("path", cfg.Path).Msg("configuration loaded")
	}

	caser := titlecase.New(cfg.CaserConfig(&logger))

	return &environment{
		config: cfg,
		logger: logger,
		titler: cache.NewTitleCache(caser, cfg.TitleCacheSize()),
	}, nil
}
