// Package main is the entry point for the graphsh CLI application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	gcli "github.com/NikitaCOEUR/graphsh/internal/cli"
	"github.com/NikitaCOEUR/graphsh/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// common reads the global flags shared by every command
func common(cmd *cli.Command, stdout io.Writer) gcli.CommonParams {
	return gcli.CommonParams{
		ConfigPath: cmd.String("config"),
		LogLevel:   cmd.String("log-level"),
		Output:     stdout,
	}
}

// values reads the value form flags; unset forms stay nil
func values(cmd *cli.Command) gcli.ValueParams {
	var v gcli.ValueParams
	if cmd.IsSet("boolean") {
		b := cmd.String("boolean")
		v.Boolean = &b
	}
	if cmd.IsSet("datetime") {
		v.DateTime = cmd.StringSlice("datetime")
	}
	if cmd.IsSet("integer") {
		v.Integer = cmd.StringSlice("integer")
	}
	if cmd.IsSet("text") {
		v.Text = cmd.StringSlice("text")
	}
	return v
}

// firstArg returns the first positional argument, or ""
func firstArg(cmd *cli.Command) string {
	if cmd.Args().Len() > 0 {
		return cmd.Args().Get(0)
	}
	return ""
}

func entityFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "entity",
		Aliases: []string{"e"},
		Usage:   "Entity kind or alias (defaults to default_entity from the config)",
	}
}

func operatorFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "operator",
		Aliases:  []string{"o"},
		Usage:    "Operator: Equals, NotEquals, LessThan, LessThanOrEqualsTo, GreaterThan, GreaterThanOrEqualsTo, GreaterThanAndLessThan, GreaterThanOrEqualToAndLessThanOrEqualTo, Present, Empty",
		Required: true,
	}
}

func documentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "document",
			Aliases: []string{"d"},
			Usage:   "Print a dry-run query document instead of the where argument",
		},
		&cli.StringSliceFlag{
			Name:    "select",
			Aliases: []string{"s"},
			Usage:   "Selected field, dotted for nested fields (repeatable)",
		},
	}
}

//nolint:gocyclo // Command tree construction is long but flat
func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:                      "graphsh",
		Usage:                     "Build and validate typed filters for a GraphQL API",
		Version:                   version.String(),
		Writer:                    stdout,
		EnableShellCompletion:     true,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error), overrides log_level from the config",
				Sources: cli.EnvVars("GRAPHSH_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file (defaults to $XDG_CONFIG_HOME/graphsh/config.yml)",
				Sources: cli.EnvVars("GRAPHSH_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "filter",
				Usage: "Build and validate a field filter, print its where argument",
				Flags: append([]cli.Flag{
					entityFlag(),
					&cli.StringFlag{
						Name:     "field",
						Aliases:  []string{"f"},
						Usage:    "Field name of the entity",
						Required: true,
					},
					operatorFlag(),
				}, documentFlags()...),
				MutuallyExclusiveFlags: []cli.MutuallyExclusiveFlags{
					{
						Flags: [][]cli.Flag{
							{
								&cli.StringFlag{
									Name:  "boolean",
									Usage: "Boolean value (true or false)",
								},
							},
							{
								&cli.StringSliceFlag{
									Name:  "datetime",
									Usage: "Date-time value, RFC 3339 or 2006-01-02 (repeatable, 'null' for a null element)",
								},
							},
							{
								&cli.StringSliceFlag{
									Name:  "integer",
									Usage: "Integer value (repeatable, 'null' for a null element)",
								},
							},
							{
								&cli.StringSliceFlag{
									Name:  "text",
									Usage: "Text value (repeatable, 'null' for a null element)",
								},
							},
						},
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return gcli.Filter(gcli.FilterParams{
						CommonParams: common(cmd, stdout),
						ValueParams:  values(cmd),
						Entity:       cmd.String("entity"),
						Field:        cmd.String("field"),
						Operator:     cmd.String("operator"),
						Document:     cmd.Bool("document"),
						Select:       cmd.StringSlice("select"),
					})
				},
			},
			{
				Name:  "custom",
				Usage: "Build and validate a custom filter addressed by name",
				Flags: append([]cli.Flag{
					entityFlag(),
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Custom field name",
						Required: true,
					},
					operatorFlag(),
					&cli.StringSliceFlag{
						Name:  "text",
						Usage: "Text value (repeatable, 'null' for a null element)",
					},
				}, documentFlags()...),
				Action: func(_ context.Context, cmd *cli.Command) error {
					var texts []string
					if cmd.IsSet("text") {
						texts = cmd.StringSlice("text")
					}
					return gcli.Custom(gcli.CustomParams{
						CommonParams: common(cmd, stdout),
						Entity:       cmd.String("entity"),
						Name:         cmd.String("name"),
						Operator:     cmd.String("operator"),
						Text:         texts,
						Document:     cmd.Bool("document"),
						Select:       cmd.StringSlice("select"),
					})
				},
			},
			{
				Name:      "query",
				Usage:     "Validate a filter file and print the dry-run query document",
				ArgsUsage: "[filter-file|-]",
				Flags: []cli.Flag{
					entityFlag(),
					&cli.StringFlag{
						Name:  "operation-name",
						Usage: "Operation name (defaults to operation_name from the config)",
					},
					&cli.StringSliceFlag{
						Name:    "select",
						Aliases: []string{"s"},
						Usage:   "Selected field, dotted for nested fields (repeatable)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return gcli.Query(gcli.QueryParams{
						CommonParams:  common(cmd, stdout),
						Path:          firstArg(cmd),
						Entity:        cmd.String("entity"),
						OperationName: cmd.String("operation-name"),
						Select:        cmd.StringSlice("select"),
					})
				},
			},
			{
				Name:      "validate-file",
				Usage:     "Validate a filter file",
				ArgsUsage: "[filter-file|-]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return gcli.ValidateFile(gcli.ValidateParams{
						CommonParams: common(cmd, stdout),
						Path:         firstArg(cmd),
					})
				},
			},
			{
				Name:      "fields",
				Usage:     "List entities, or the filterable fields of one entity",
				ArgsUsage: "[entity]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return gcli.Fields(gcli.FieldsParams{
						CommonParams: common(cmd, stdout),
						Entity:       firstArg(cmd),
					})
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for filter files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" {
						outputPath = firstArg(cmd)
					}
					return gcli.Schema(outputPath, stdout)
				},
			},
			{
				Name:  "status",
				Usage: "Show the active configuration and known entities",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return gcli.Status(gcli.StatusParams{CommonParams: common(cmd, stdout)})
				},
			},
		},
	}
}
