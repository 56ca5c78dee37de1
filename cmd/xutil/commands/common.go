package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erraggy/xutil/internal/cliutil"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// maxInputSize bounds documents read from files or stdin.
const maxInputSize = 10 << 20

// readDocument reads path, or stdin when path is empty or "-".
func readDocument(cmd *cobra.Command, path string) ([]byte, error) {
	var r io.Reader
	name := path
	if path == "" || path == StdinFilePath {
		r = cmd.InOrStdin()
		name = "stdin"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(data) > maxInputSize {
		return nil, fmt.Errorf("%s exceeds maximum size of %d bytes", name, maxInputSize)
	}
	return data, nil
}

// textArg joins args into the input text, or reads stdin when there are
// none or the only argument is "-". A single trailing newline from stdin
// is dropped.
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == StdinFilePath) {
		return strings.Join(args, " "), nil
	}
	data, err := readDocument(cmd, StdinFilePath)
	if err != nil {
		return "", err
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// output writes data in the selected format; text mode prints line.
func (o *rootOptions) output(cmd *cobra.Command, data any, line string) error {
	return cliutil.Output(cmd.OutOrStdout(), o.format, data, func(w io.Writer) {
		cliutil.Writef(w, "%s\n", line)
	})
}

// outputFunc is output with a custom text renderer.
func (o *rootOptions) outputFunc(cmd *cobra.Command, data any, text func(io.Writer)) error {
	return cliutil.Output(cmd.OutOrStdout(), o.format, data, text)
}
