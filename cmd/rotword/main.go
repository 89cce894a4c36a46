package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"rotword/internal/ctxlog"
	"rotword/internal/rec"
	"rotword/internal/rotate"
	"syscall"
)

type usageError struct {
	prog string
}

func (e usageError) Error() string {
	return fmt.Sprintf("Usage: %s <function> <args>", e.prog)
}

type unknownFunctionError struct {
	name string
}

func (e unknownFunctionError) Error() string {
	return fmt.Sprintf("Unknown function: %s", e.name)
}

func rotWord(ctx context.Context, format rotate.Format, word string, w io.Writer) error {
	logger := ctxlog.Get(ctx)

	b := rotate.DecodeHex(rotate.LeadingWord(word))
	if len(b) == 0 {
		logger.Debug("word decoded to no bytes", "word", word)
	}

	r := rotate.Word(b)
	logger.Debug("rotated word", "in", fmt.Sprintf("%x", b), "out", fmt.Sprintf("%x", r))

	_, err := fmt.Fprintln(w, format.Encode(r))
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	defer rec.Error(&err)

	c, err := DefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx = ctxlog.Setup(ctx, "rotword", stderr, c.Log)

	if len(args) < 3 {
		prog := "rotword"
		if len(args) > 0 {
			prog = args[0]
		}
		return usageError{prog: prog}
	}

	fn := args[1]
	ctx = ctxlog.With(ctx, "function", fn)
	ctxlog.Get(ctx).Debug("dispatching")

	switch fn {
	case "RotWord":
		return rotWord(ctx, c.Format, args[2], stdout)
	default:
		return unknownFunctionError{name: fn}
	}
}

// execute runs the command and reports a failure on stderr,
// returning the process exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := execute(ctx, os.Args, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
