package binary

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Run run binaryName with args and stdin optinally. A non-zero exit is
// returned as an error carrying the tool's stderr.
func Run(ctx context.Context, binaryName string, args []string, stdin io.Reader) (*bytes.Buffer, *bytes.Buffer, error) {

	var stdout bytes.Buffer
	var stderr bytes.Buffer

	binaryPath, err := exec.LookPath(binaryName)
	if err != nil {
		return nil, nil, err
	}

	cmd := exec.CommandContext(ctx, binaryPath, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Start()
	if err != nil {
		return nil, nil, err
	}

	if err := cmd.Wait(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return &stdout, &stderr, errors.Wrapf(err, "%s", binaryName)
		}
		return &stdout, &stderr, errors.Wrapf(err, "%s: %s", binaryName, msg)
	}

	return &stdout, &stderr, nil
}
