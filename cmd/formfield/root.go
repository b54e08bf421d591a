package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/ui"
)

type rendererFlags struct {
	themeDir string
	locale   string
	messages string
}

func (f *rendererFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.themeDir, "theme-dir", envDefault(envThemeDir, ""), "directory with override element templates")
	cmd.Flags().StringVar(&f.locale, "locale", envDefault(envLocale, ""), "locale used to look up messages")
	cmd.Flags().StringVar(&f.messages, "messages", "", "YAML message catalog keyed by locale then message key")
}

func (f *rendererFlags) renderer() (*ui.Renderer, error) {
	options := []ui.Option{ui.WithTemplatesDir(f.themeDir)}
	if f.messages != "" {
		messages, err := loadCatalog(f.messages)
		if err != nil {
			return nil, err
		}
		options = append(options, ui.WithTranslator(messages, f.locale))
	}
	return ui.New(options...)
}

// catalog is a locale -> key -> message table.
type catalog map[string]map[string]string

func loadCatalog(path string) (catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read messages %s: %w", path, err)
	}
	var out catalog
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode messages %s: %w", path, err)
	}
	return out, nil
}

func (c catalog) Translate(locale string, key string, _ ...any) (string, error) {
	for _, candidate := range []string{locale, baseLocale(locale)} {
		if msg, ok := c[candidate][key]; ok {
			return msg, nil
		}
	}
	return "", fmt.Errorf("no message %q for locale %q", key, locale)
}

func baseLocale(locale string) string {
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		return locale[:idx]
	}
	return locale
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "formfield",
		Short:         "Render accessible form field fragments.",
		Long:          "formfield renders label, input, select, textarea and error elements from declarative field documents.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCmd(),
		newServeCmd(),
		newPromptCmd(),
	)
	return root
}
