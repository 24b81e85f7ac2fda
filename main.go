package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/clms-qa/clms-contract-tests/api"
	"github.com/clms-qa/clms-contract-tests/browser"
	"github.com/clms-qa/clms-contract-tests/clmstests"
	"github.com/clms-qa/clms-contract-tests/config"
	"github.com/clms-qa/clms-contract-tests/harness"
	"github.com/clms-qa/clms-contract-tests/uitests"
)

func main() {
	// A .env file is optional; real environment variables and flags win.
	_ = godotenv.Load()

	env, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}

	var params commandParams
	if !params.Read(os.Args, env) {
		os.Exit(1)
	}

	mainDebugLogger := harness.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	creds := api.Credentials{Username: params.username, Password: params.password}
	client, err := api.Connect(params.apiURL, creds,
		params.startupTimeout, params.requestTimeout, mainDebugLogger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CLMS connection error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	harness.PrintFilterDescription(os.Stdout, params.filters)

	testLogger := &harness.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	fmt.Println("Running API test suite")
	results := clmstests.RunTestSuite(client, params.filters.AsFilter, testLogger)

	if params.uiURL != "" {
		fmt.Println()
		fmt.Println("Running UI test suite")
		uiResults := uitests.RunTestSuite(params.uiURL, creds,
			browser.Options{Headless: params.headless},
			params.filters.AsFilter, testLogger)
		results = harness.Merge(results, uiResults)
	}

	fmt.Println()
	harness.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed tests:")
		fmt.Printf("  %s\n", rerunCommand(params, results.Failures))
		os.Exit(1)
	}
}
