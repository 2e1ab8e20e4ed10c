package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/riderctl/internal/accessor"
	"github.com/thoreinstein/riderctl/internal/errors"
	"github.com/thoreinstein/riderctl/internal/version"
)

var (
	listModel      string
	listConstraint string
	listFormat     string
)

func init() {
	listCmd.Flags().StringVar(&listModel, "model", "all",
		"project model to list: solution, uproject, all")
	listCmd.Flags().StringVar(&listConstraint, "constraint", "",
		`only list builds matching a semver constraint over the build number (e.g. ">= 232")`)
	listCmd.Flags().StringVarP(&listFormat, "format", "o", "text",
		"output format: text, json, yaml, toml")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List discovered Rider installations",
	Long: `List every handle generated from the discovered Rider installations.

Each installation gets one handle for solution files and, when it supports
Unreal projects, one for .uproject files. The handle marked as default
(named "Rider" or "Rider Uproject") always points at the newest version.

Versions are build numbers from product-info.json, so Rider 2023.2 appears
as 232.8660.185 and --constraint ranges are written over the build: ">= 232"
selects 2023.2 and later, "~231" selects 2023.1.x.`,
	Example: `  # List everything
  riderctl list

  # Only handles that open .uproject files
  riderctl list --model uproject

  # Only 2023.2 and newer builds, as JSON
  riderctl list --constraint ">= 232" --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// handleRow is one handle in list output.
type handleRow struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Model     string `json:"model" yaml:"model" toml:"model"`
	Version   string `json:"version" yaml:"version" toml:"version"`
	Build     string `json:"build,omitempty" yaml:"build,omitempty" toml:"build,omitempty"`
	Origin    string `json:"origin" yaml:"origin" toml:"origin"`
	Support   string `json:"support" yaml:"support" toml:"support"`
	Default   bool   `json:"default" yaml:"default" toml:"default"`
	Available bool   `json:"available" yaml:"available" toml:"available"`
	Path      string `json:"path" yaml:"path" toml:"path"`
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithWriter(cmd, os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(cmd *cobra.Command, w io.Writer) error {
	models, err := parseModels(listModel)
	if err != nil {
		return err
	}
	if listConstraint != "" {
		if _, err := (version.Version{}).Satisfies(listConstraint); err != nil {
			return errors.NewUserError(err, `use a constraint over the build number, such as ">= 232" or "~231"`)
		}
	}
	switch listFormat {
	case "text", "json", "yaml", "toml":
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", listFormat), "use text, json, yaml or toml")
	}

	s, err := startSession(cmd.Context(), currentConfig(), nil)
	if err != nil {
		return err
	}
	defer s.close()

	rows, err := buildRows(s.registry.All(), models, listConstraint)
	if err != nil {
		return err
	}
	return writeRows(w, rows, listFormat)
}

func parseModels(name string) ([]accessor.ProjectModel, error) {
	if name == "all" || name == "" {
		return []accessor.ProjectModel{accessor.ModelSolution, accessor.ModelUproject}, nil
	}
	m, ok := accessor.ParseModel(name)
	if !ok {
		return nil, errors.NewUserError(errors.Newf("unknown model %q", name), "use solution, uproject or all")
	}
	return []accessor.ProjectModel{m}, nil
}

func buildRows(handles []*accessor.Accessor, models []accessor.ProjectModel, constraint string) ([]handleRow, error) {
	rows := make([]handleRow, 0, len(handles))
	for _, a := range handles {
		if !slices.Contains(models, a.Model()) {
			continue
		}
		info := a.Info()
		if constraint != "" {
			ok, err := info.Version.Satisfies(constraint)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		rows = append(rows, handleRow{
			Name:      a.Name(),
			Model:     a.Model().String(),
			Version:   info.Version.String(),
			Build:     info.Build,
			Origin:    info.Origin.String(),
			Support:   info.Support.String(),
			Default:   a.Aggregate(),
			Available: a.LastAvailable(),
			Path:      a.ExecutablePath(),
		})
	}
	return rows, nil
}

func writeRows(w io.Writer, rows []handleRow, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rows), "encoding JSON")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case "toml":
		// TOML documents must be tables at the top level.
		doc := struct {
			Handles []handleRow `toml:"handles"`
		}{rows}
		return errors.Wrap(toml.NewEncoder(w).Encode(doc), "encoding TOML")
	default:
		return writeRowsText(w, rows)
	}
}

func writeRowsText(w io.Writer, rows []handleRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No matching Rider installations")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tORIGIN\tSUPPORT\tPATH")
	for _, r := range rows {
		name := r.Name
		if r.Default {
			name = "* " + name
		} else {
			name = "  " + name
		}
		path := r.Path
		if !r.Available {
			path += " (missing)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", name, r.Version, r.Origin, r.Support, path)
	}
	return errors.Wrap(tw.Flush(), "writing table")
}
