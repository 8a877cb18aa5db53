package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/ironsheep/region-trace/internal/config"
)

// Prompt is written before each command is read.
const Prompt = "> "

// Interpreter reads commands and applies them to a Session.
type Interpreter struct {
	session *Session
	cfg     *config.Config
	out     io.Writer
}

// New creates an interpreter writing its output to out.
func New(session *Session, cfg *config.Config, out io.Writer) *Interpreter {
	return &Interpreter{
		session: session,
		cfg:     cfg,
		out:     out,
	}
}

// Run reads commands from r until exit, end of input, or ctx is cancelled.
//
// Lines are read on a separate goroutine so that cancelling ctx ends Run even
// while a read is blocked. That goroutine stays blocked in r until its next read
// returns.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(ctx, r, lines, readErr)

	fmt.Fprint(in.out, Prompt)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(in.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("scanner error: %w", err)
				}
				return nil
			}

			quit, err := in.Execute(ctx, line)
			if err != nil {
				fmt.Fprintf(in.out, "error: %v\n", err)
			}
			if quit {
				return nil
			}
			fmt.Fprint(in.out, Prompt)
		}
	}
}

// readLines sends each line of r on lines. At end of input it sends the scanner
// error (or nil) on errc and closes lines.
func readLines(ctx context.Context, r io.Reader, lines chan<- string, errc chan<- error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	errc <- scanner.Err()
	close(lines)
}

// Execute runs a single command line. It reports whether the line asked the
// interpreter to stop.
func (in *Interpreter) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, args := fields[0], fields[1:]

	start := time.Now()
	defer func() {
		if in.cfg.Debug() {
			log.Printf("command %q finished in %v", name, time.Since(start))
		}
	}()

	switch name {
	case "exit", "quit":
		return true, nil
	case "help":
		in.handleHelp()
		return false, nil
	}

	return false, in.dispatch(ctx, name, args)
}

// dispatch routes a command to its handler.
func (in *Interpreter) dispatch(ctx context.Context, name string, args []string) error {
	switch name {
	// Segmentation
	case "region":
		return in.handleRegion(ctx, args)
	case "tolerance":
		return in.handleTolerance(args)
	case "blur":
		return in.handleBlur(args)
	case "clean":
		return in.handleClean(args)
	case "sample":
		return in.handleSample(args)

	// Perimeters
	case "smooth":
		return in.handleSmooth(args)
	case "fillgaps":
		return in.handleFillGaps(args)

	// Output
	case "display":
		return in.handleDisplay(args)
	case "zoom":
		return in.handleZoom(args)
	case "info":
		return in.handleInfo(args)
	case "store":
		return in.handleStore(ctx, args)

	default:
		fmt.Fprintf(in.out, "Command %q does not exist. Type \"help\" for a list of commands.\n", name)
		return nil
	}
}
