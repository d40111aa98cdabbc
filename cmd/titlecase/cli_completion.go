package main

import (
	"os"
	"strconv"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	predictAnyFileAndDir = predict.Files("*")
	predictConfigFile    = predict.Files("*.yaml")
	predictLogLevel      = predict.Set{"trace", "debug", "info", "warn", "error"}

	completer = CreateCompleter(func(c *Completer) *complete.Command {
		convertCmd := &complete.Command{
			Flags: map[string]complete.Predictor{
				"config":     predictConfigFile,
				"log-level":  predictLogLevel,
				"abbrev":     predict.Nothing,
				"small":      predict.Nothing,
				"cache-size": predict.Nothing,
				"f":          predictAnyFileAndDir,
				"json":       predict.Nothing,
			},
		}

		return &complete.Command{
			Sub: map[string]*complete.Command{
				CONVERT_SUBCMD: convertCmd,
				CHECK_SUBCMD: {
					Flags: map[string]complete.Predictor{
						"config":      predictConfigFile,
						"log-level":   predictLogLevel,
						"abbrev":      predict.Nothing,
						"small":       predict.Nothing,
						"cache-size":  predict.Nothing,
						"concurrency": predict.Nothing,
						"json":        complete.PredictFunc(c.predictFileOrDirAfterSwitch),
						"markdown":    complete.PredictFunc(c.predictFileOrDirAfterSwitch),
						"watch":       complete.PredictFunc(c.predictFileOrDirAfterSwitch),
					},
					Args: predictAnyFileAndDir,
				},
				INIT_CONFIG_SUBCMD:           {},
				HELP_SUBCMD:                  {Args: predict.Set(SUBCOMMANDS)},
				INSTALL_COMPLETIONS_SUBCMD:   {},
				UNINSTALL_COMPLETIONS_SUBCMD: {},
			},
			Flags: convertCmd.Flags,
		}
	})
)

type Completer struct {
	*complete.Command
	currentCompLine  string
	currentCompPoint int //-1 if not retrieved
}

func CreateCompleter(create func(c *Completer) *complete.Command) *Completer {
	c := &Completer{currentCompPoint: -1}
	c.Command = create(c)
	return c
}

// Complete does nothing if the program is not invoked by the shell for completion.
func (c *Completer) Complete(name string) {
	c.currentCompLine = os.Getenv("COMP_LINE")
	c.currentCompPoint, _ = strconv.Atoi(os.Getenv("COMP_POINT")) //ignore error because .Complete will also check the value

	if c.currentCompPoint > len(c.currentCompLine) {
		c.currentCompPoint = len(c.currentCompLine)
	}

	c.Command.Complete(name)
}

func (c *Completer) beforeCursorPoint() string {
	if c.currentCompPoint < 0 {
		return ""
	}
	return c.currentCompLine[:c.currentCompPoint]
}

func (c *Completer) predictFileOrDirAfterSwitch(prefix string) (results []string) {
	s := c.beforeCursorPoint()
	if s == "" {
		return
	}

	switch s[len(s)-1] {
	case '=':
		//The flag is a switch, it does not accept any value.
		return
	default:
		return predictAnyFileAndDir.Predict(prefix)
	}
}
