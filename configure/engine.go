package configure

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/byte4ever/tlaxcaltin/config"
	"github.com/byte4ever/tlaxcaltin/digester"
)

// Engine writes configured files: the private-stripped
// join files in order, each followed by a newline, then
// the rendered template.
type Engine struct {
	// Values is the configuration mapping.
	Values config.Values

	// Executable creates the output with mode 0777
	// instead of 0666.
	Executable bool

	// OnlyIfChanged renders into memory and rewrites the
	// output only when its digest differs from the
	// existing file. Nothing is written on failure.
	OnlyIfChanged bool
}

// ConfigureFile parses configStr, treats the last of
// inPaths as the template and the others as join files,
// and writes the result to outPath.
func ConfigureFile(
	inPaths []string,
	outPath string,
	configStr string,
) error {
	const errCtx = "configuring file"

	if len(inPaths) == 0 {
		return fmt.Errorf("%s: no input paths", errCtx)
	}

	values, err := config.Parse(configStr)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	en := Engine{Values: values}

	last := len(inPaths) - 1

	if err := en.Configure(
		inPaths[:last], inPaths[last], outPath,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Configure writes the joined and rendered output to
// outPath. If outPath is empty it writes to stdout.
func (en *Engine) Configure(
	joinPaths []string,
	tplPath string,
	outPath string,
) (retErr error) {
	const errCtx = "configuring"

	if outPath == "" {
		if err := en.Write(os.Stdout, joinPaths, tplPath); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	if en.OnlyIfChanged {
		if err := en.writeIfChanged(
			joinPaths, tplPath, outPath,
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	fi, err := os.OpenFile( //nolint:gosec // paths from CLI args
		outPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		en.perm(),
	)
	if err != nil {
		return fmt.Errorf("%s: opening output: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	if err := en.Write(fi, joinPaths, tplPath); err != nil {
		return fmt.Errorf("%s: %s: %w", errCtx, outPath, err)
	}

	slog.Debug("configured file", "path", outPath)

	return nil
}

// Write streams the stripped join files and the rendered
// template to out.
func (en *Engine) Write(
	out io.Writer,
	joinPaths []string,
	tplPath string,
) (retErr error) {
	const errCtx = "writing configured output"

	for _, jp := range joinPaths {
		content, err := os.ReadFile(jp) //nolint:gosec // paths from CLI args
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		stripped, err := StripPrivate(string(content))
		if err != nil {
			return fmt.Errorf("%s: %s: %w", errCtx, jp, err)
		}

		if _, err := io.WriteString(out, stripped+"\n"); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		slog.Debug("joined file", "path", jp)
	}

	fi, err := os.Open(tplPath) //nolint:gosec // paths from CLI args
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	if err := NewRenderer(en.Values).Render(fi, out); err != nil {
		return fmt.Errorf("%s: %s: %w", errCtx, tplPath, err)
	}

	return nil
}

// writeIfChanged renders into memory and replaces outPath
// only when the content digest differs.
func (en *Engine) writeIfChanged(
	joinPaths []string,
	tplPath string,
	outPath string,
) error {
	const errCtx = "writing changed output"

	var buf bytes.Buffer

	if err := en.Write(&buf, joinPaths, tplPath); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	same, err := digester.Matches(outPath, buf.Bytes())
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if same {
		slog.Info("output unchanged, skipping write", "path", outPath)
	} else if err := os.WriteFile( //nolint:gosec // paths from CLI args
		outPath, buf.Bytes(), en.perm(),
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	// WriteFile keeps the mode of an existing file, and an
	// unchanged file is not written at all.
	if en.Executable {
		if err := os.Chmod(outPath, en.perm()); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	slog.Debug("configured file", "path", outPath)

	return nil
}

func (en *Engine) perm() os.FileMode {
	if en.Executable {
		return 0o777
	}

	return 0o666
}
