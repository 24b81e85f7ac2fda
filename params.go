package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/alessio/shellescape"

	"github.com/clms-qa/clms-contract-tests/config"
	"github.com/clms-qa/clms-contract-tests/harness"
)

type commandParams struct {
	apiURL         string
	uiURL          string
	username       string
	password       string
	filters        harness.RegexFilters
	headless       bool
	requestTimeout time.Duration
	startupTimeout time.Duration
	debug          bool
	debugAll       bool
}

// Read parses the command line. The environment (and any .env file) supplies
// the defaults, so flags only need to name what differs for this run.
func (c *commandParams) Read(args []string, env *config.Environment) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.apiURL, "url", env.APIBaseURL, "CLMS API base URL")
	fs.StringVar(&c.uiURL, "ui-url", env.UIBaseURL, "CLMS web UI URL (empty disables the browser tests)")
	fs.StringVar(&c.username, "username", env.Username, "login username")
	fs.StringVar(&c.password, "password", env.Password, "login password")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.headless, "headless", env.Headless, "run the browser headless")
	fs.DurationVar(&c.requestTimeout, "timeout", env.RequestTimeout, "timeout for each API request")
	fs.DurationVar(&c.startupTimeout, "startup-timeout", env.StartupTimeout,
		"how long to wait for CLMS to accept connections")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.apiURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		fs.Usage()
		return false
	}
	return true
}

// rerunCommand builds a copy-pasteable command line that reruns exactly the
// tests that failed.
func rerunCommand(params commandParams, failures []harness.TestResult) string {
	var b commandBuilder
	b.add(os.Args[0], "-url", params.apiURL)
	if params.uiURL != "" {
		b.add("-ui-url", params.uiURL)
	}
	for _, f := range failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
