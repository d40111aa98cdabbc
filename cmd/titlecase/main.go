package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/posener/complete/v2/install"
	"golang.org/x/term"

	"github.com/inoxlang/titlecase/internal/config"
	"github.com/inoxlang/titlecase/internal/utils"
)

const (
	ERROR_STATUS_CODE = 1

	COMMAND_NAME = "titlecase"

	//maximum Levenshtein distance between an unknown command and the suggested subcommand,
	//a substitution costs 2 so only a missing or extra letter is reported (chek, checkk).
	MAX_SUBCMD_SUGGESTION_DISTANCE = 1
)

func main() {
	//handle completions
	completer.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdin, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, in io.Reader, outW io.Writer, errW io.Writer) (statusCode int) {
	mainSubCommand := ""
	var mainSubCommandArgs []string

	switch {
	case len(args) == 1: //no subcommand specified
		mainSubCommand = CONVERT_SUBCMD
	case slices.Contains(SUBCOMMANDS, args[1]) || slices.Contains(HELP_SUBCMD_EQUIVALENTS, args[1]):
		mainSubCommand = args[1]
		mainSubCommandArgs = args[2:]
	default:
		//a single word that is close to a subcommand is more likely a typo than a text to convert.
		if len(args) == 2 && !strings.HasPrefix(args[1], "-") {
			closest, _, ok := utils.FindClosestString(context.Background(), SUBCOMMANDS, args[1], MAX_SUBCMD_SUGGESTION_DISTANCE)
			if ok {
				fmt.Fprintf(errW, "unknown command '%s', did you mean '%s' ?\n", args[1], closest)
				return ERROR_STATUS_CODE
			}
		}
		mainSubCommand = CONVERT_SUBCMD
		mainSubCommandArgs = args[1:]
	}

	//if the command has the shape help <subcommand> ... we modify the arguments to ask the subcommand to print its help message.
	if mainSubCommand == HELP_SUBCMD && len(mainSubCommandArgs) > 0 && mainSubCommandArgs[0] != "" && unicode.IsLetter(rune(mainSubCommandArgs[0][0])) {
		mainSubCommand = mainSubCommandArgs[0]
		mainSubCommandArgs = []string{"-h"}

		if !slices.Contains(SUBCOMMANDS, mainSubCommand) {
			fmt.Fprintf(errW, "unknown command '%s'\n", mainSubCommand)
			fmt.Fprint(errW, TITLECASE_CMD_HELP)
			return ERROR_STATUS_CODE
		}
	}

	switch mainSubCommand {
	case HELP_SUBCMD, "--help", "-help", "-h":
		fmt.Fprint(outW, TITLECASE_CMD_HELP)
		return
	case INSTALL_COMPLETIONS_SUBCMD:
		err := install.Install(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "installed")
		return
	case UNINSTALL_COMPLETIONS_SUBCMD:
		err := install.Uninstall(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "uninstalled")
		return
	case INIT_CONFIG_SUBCMD:
		return InitConfig(mainSubCommand, mainSubCommandArgs, outW, errW)
	case CHECK_SUBCMD:
		return CheckFiles(mainSubCommand, mainSubCommandArgs, outW, errW)
	default:
		return ConvertText(mainSubCommand, mainSubCommandArgs, in, outW, errW)
	}
}

func InitConfig(mainSubCommand string, mainSubCommandArgs []string, outW, errW io.Writer) (exitCode int) {
	if slices.Contains(mainSubCommandArgs, "-h") {
		fmt.Fprintln(outW, CLI_SUBCOMMAND_DESCRIPTION_MAP[mainSubCommand])
		return
	}

	path, created, err := config.CreateDefaultConfigFile()
	if err != nil {
		fmt.Fprintln(errW, "failed to create the configuration file:", err)
		return ERROR_STATUS_CODE
	}

	if created {
		fmt.Fprintf(outW, "configuration file created: %s\n", path)
	} else {
		fmt.Fprintf(outW, "configuration file already exists: %s\n", path)
	}
	return
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
