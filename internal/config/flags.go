package config

import (
	"flag"
	"fmt"
	"time"
)

// FlagSetName names the flag set in usage output.
const FlagSetName = "paystat-validate"

// ParseFlags parses all configuration flags from args (without the program
// name). A single positional argument is taken as the report path when -r
// is not given.
//
// Flags:
//
//	-r report envelope JSON path
//	-o outcome JSON path (stdout when empty)
//	-c/-config json file path with configs
//	-code-lists directory with code-list overrides
//	-log-level log level (debug, info, warn, error)
//	-workers maximum number of items validated in parallel
//	-timeout report validation timeout (e.g., "30s", "1m")
//	-metrics-file Prometheus textfile output path
//	-app-version application version
func ParseFlags(args []string) (*StructuredConfig, error) {
	var reportPath, outputPath string
	var jsonConfigPath string
	var codeListsDir string
	var logLevel string
	var maxParallelItems int
	var timeout time.Duration
	var metricsFile string
	var version string

	fs := flag.NewFlagSet(FlagSetName, flag.ContinueOnError)
	fs.StringVar(&reportPath, "r", "", "Report envelope JSON path")
	fs.StringVar(&outputPath, "o", "", "Outcome JSON path (stdout when empty)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&codeListsDir, "code-lists", "", "Directory with code-list overrides")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.IntVar(&maxParallelItems, "workers", 0, "Maximum number of items validated in parallel")
	fs.DurationVar(&timeout, "timeout", 0, "Report validation timeout (e.g., 30s, 1m)")
	fs.StringVar(&metricsFile, "metrics-file", "", "Prometheus textfile output path")
	fs.StringVar(&version, "app-version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if reportPath == "" && fs.NArg() > 0 {
		reportPath = fs.Arg(0)
	}

	return &StructuredConfig{
		App:          App{Version: version},
		Log:          Log{Level: logLevel},
		Engine:       Engine{MaxParallelItems: maxParallelItems, Timeout: timeout},
		CodeLists:    CodeLists{Dir: codeListsDir},
		Input:        Input{ReportPath: reportPath, OutputPath: outputPath},
		Metrics:      Metrics{TextfilePath: metricsFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
