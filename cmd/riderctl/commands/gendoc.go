package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/riderctl/cmd"
	"github.com/thoreinstein/riderctl/internal/errors"
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		outputDir, _ := c.Flags().GetString("dir")
		format, _ := c.Flags().GetString("format")
		if err := generateDocs(outputDir, format); err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "Documentation generated in %s\n", outputDir)
		return nil
	},
}

func init() {
	genDocCmd.Flags().StringP("dir", "d", "", "Output directory for documentation")
	genDocCmd.Flags().String("format", "markdown", "Output format: markdown, man")
	rootCmd.AddCommand(genDocCmd)
}

func generateDocs(outputDir, format string) error {
	if outputDir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "pass --dir")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	switch format {
	case "markdown":
		err := doc.GenMarkdownTreeCustom(rootCmd, outputDir, filePrepender, linkHandler)
		return errors.Wrap(err, "generating markdown")
	case "man":
		header := &doc.GenManHeader{
			Title:   "RIDERCTL",
			Section: "1",
			Source:  "riderctl " + cmd.Version,
		}
		return errors.Wrap(doc.GenManTree(rootCmd, header, outputDir), "generating man pages")
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", format), "use markdown or man")
	}
}

func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	// riderctl_config_show.md -> riderctl config show
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s command"
draft: false
toc: true
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
