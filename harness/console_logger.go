package harness

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ConsoleTestLogger writes test progress to the console as the run executes.
// Debug output captured during a test is dumped according to the two flags.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	Output               io.Writer
}

func (c *ConsoleTestLogger) dest() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Fprintf(c.dest(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.dest(), "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	if failed {
		_, _ = color.New(color.FgRed).Fprintf(c.dest(), "  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.dest(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		_, _ = color.New(color.FgYellow).Fprintf(c.dest(), "  SKIPPED: %s\n", id)
	} else {
		_, _ = color.New(color.FgYellow).Fprintf(c.dest(), "  SKIPPED: %s (%s)\n", id, reason)
	}
}
