package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/route"
	"showtime-finder-cli/viewstate"
)

var routeFormat string

type routeOutput struct {
	Input string          `json:"input"`
	Route route.Route     `json:"route"`
	Path  string          `json:"path"`
	State viewstate.State `json:"state"`
}

var routeCmd = &cobra.Command{
	Use:   "route [path]",
	Short: "Resolve a path to its route and view state",
	Long:  `Parse a path the way a deep link is opened and print the resulting route, canonical path and state.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path := "/"
		if len(args) == 1 {
			path = args[0]
		}
		ds := dataset.Default()
		state, r := viewstate.Open(ds, path, cfg.DefaultCity)
		return writeOutput(cmd.OutOrStdout(), routeFormat, routeOutput{
			Input: path,
			Route: r,
			Path:  state.Route().Path(ds.DefaultTabKey()),
			State: state,
		})
	},
}

func init() {
	routeCmd.Flags().StringVarP(&routeFormat, "output", "o", "json", "output format: json or yaml")
}

// writeOutput encodes v as indented JSON or as YAML with the JSON field
// names.
func writeOutput(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	switch format {
	case "json":
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
