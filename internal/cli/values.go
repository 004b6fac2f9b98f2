package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"valuesquiz/internal/values"
)

// runValues builds the handler for the values command.
func runValues(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .valuesquiz/config.yml)")
		valuesFile := flags.String("values", "", "YAML or JSON values file replacing the built-in list")
		format := flags.String("format", "text", "Output format: text|json|yaml")
		if code, ok := parseArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		path := *valuesFile
		if path == "" {
			cfg, err := resolveConfig(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
				return ExitError
			}
			path = cfg.ValuesFile
		}
		labels, err := values.Resolve(path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load values:\n%v\n", err)
			return ExitError
		}
		if err := writeLabels(stdout, *format, labels); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		return ExitOK
	}
}

// writeLabels prints labels in the requested format.
func writeLabels(w io.Writer, format string, labels []string) error {
	list := values.List{Version: 1, Values: labels}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		width := len(fmt.Sprint(len(labels)))
		for i, label := range labels {
			fmt.Fprintf(w, "%*d. %s\n", width, i+1, label)
		}
		return nil
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(list)
	case "yaml", "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(list); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("invalid format %q (expected text|json|yaml)", format)
	}
}
