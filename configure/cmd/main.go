// Command configure_file renders a configure template. Every input path
// but the last is a join file whose private regions are stripped; the
// last one is the template whose #cmakedefine directives and ${KEY} /
// @KEY@ placeholders are resolved against the configuration string.
//
//	configure_file [flags] JOIN... TEMPLATE OUTPUT CONFIG
//
// OUTPUT "-" writes to stdout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/tlaxcaltin/config"
	"github.com/byte4ever/tlaxcaltin/configure"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func run() error {
	const errCtx = "configure_file"

	var (
		stampInfoFiles arrayFlags
		configFiles    arrayFlags
	)

	var (
		executable    bool
		onlyIfChanged bool
		verbose       bool
	)

	flag.Var(
		&stampInfoFiles,
		"stamp_info_file",
		"Stamp info file path (repeatable)",
	)

	flag.Var(
		&configFiles,
		"config_file",
		"YAML, JSON or KEY=VALUE configuration file (repeatable)",
	)

	flag.BoolVar(
		&executable, "executable", false,
		"Set executable bit on output file",
	)

	flag.BoolVar(
		&onlyIfChanged, "only_if_changed", false,
		"Rewrite the output only when its content changes",
	)

	flag.BoolVar(
		&verbose, "verbose", false,
		"Enable debug logging",
	)

	flag.Parse()

	if verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug},
		)))
	}

	joinPaths, tplPath, outPath, inline, err := splitArgs(
		flag.Args(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	values, err := config.Load(config.Options{
		StampInfoFiles: stampInfoFiles,
		Files:          configFiles,
		Inline:         inline,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	en := configure.Engine{
		Values:        values,
		Executable:    executable,
		OnlyIfChanged: onlyIfChanged,
	}

	if err := en.Configure(
		joinPaths, tplPath, outPath,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// splitArgs splits the positional arguments
// JOIN... TEMPLATE OUTPUT CONFIG. OUTPUT "-" maps to an
// empty path, which selects stdout.
func splitArgs(args []string) (
	joinPaths []string,
	tplPath string,
	outPath string,
	inline string,
	err error,
) {
	if len(args) < 3 {
		return nil, "", "", "", fmt.Errorf(
			"expected IN_PATH... OUT_PATH CONFIG, got %d arguments",
			len(args),
		)
	}

	tpl := len(args) - 3

	outPath = args[tpl+1]
	if outPath == "-" {
		outPath = ""
	}

	return args[:tpl], args[tpl], outPath, args[tpl+2], nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
