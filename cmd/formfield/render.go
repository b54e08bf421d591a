package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/fragment"
)

func newRenderCmd() *cobra.Command {
	var (
		flags  rendererFlags
		source string
		output string
	)

	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render a field document to HTML.",
		Example: "formfield render -f signup.yaml -o signup.html",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := fragment.LoadFile(source)
			if err != nil {
				return err
			}
			renderer, err := flags.renderer()
			if err != nil {
				return err
			}
			html, err := doc.Render(renderer)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), html)
				return err
			}
			if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			log.Info("fragment written", "path", output, "groups", len(doc.Groups))
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "file", "f", "", "field document (YAML or JSON)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	_ = cmd.MarkFlagRequired("file")
	flags.bind(cmd)
	return cmd
}
