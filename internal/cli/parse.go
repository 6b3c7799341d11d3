package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwinther/homeplan/pkg/requirements"
)

// parseCommand creates the parse command for extracting requirements from a
// house description.
func (c *CLI) parseCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse [description...]",
		Short: "Extract structured requirements from a house description",
		Long: `Extract structured requirements from a house description.

The parse command runs only the first pipeline stage: a plain-language
description like "2500 sq ft Colonial with 4 bedrooms and 2.5 bathrooms"
is scanned for area, style, room counts, garage size and special rooms.
Anything not mentioned falls back to a sensible default.

Parsing is deterministic: the same description always yields the same
requirements.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")
			req := requirements.Parse(description)

			if asJSON {
				data, err := json.MarshalIndent(req, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			printSuccess("Parsed requirements")
			printRequirements(req)
			fmt.Println()
			printNextStep("Generate a plan", fmt.Sprintf("homeplan generate %q", description))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print requirements as JSON")
	return cmd
}
