package main

import (
	"os"

	"github.com/eduardofuncao/dbkit/internal/config"
	"github.com/eduardofuncao/dbkit/internal/logging"
)

func main() {
	args, verbose := splitGlobalFlags(os.Args)

	cfg, err := config.LoadConfig(config.CfgFile)
	if err != nil {
		printError("Could not load config file: %v", err)
	}

	logger, closeLog, err := logging.New(logging.Options{
		File:    cfg.LogFile(),
		Level:   cfg.Log.Level,
		Verbose: verbose,
	})
	if err != nil {
		printError("Could not set up logging: %v", err)
	}
	defer closeLog()

	NewApp(cfg, args, logger).Run()
}

// splitGlobalFlags removes --verbose/-v from args wherever it appears.
func splitGlobalFlags(args []string) ([]string, bool) {
	verbose := false
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--verbose" || arg == "-v" {
			verbose = true
			continue
		}
		rest = append(rest, arg)
	}
	return rest, verbose
}
