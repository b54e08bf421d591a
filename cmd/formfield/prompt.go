package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/fragment"
)

// prompter abstracts the terminal so the question flow can be tested.
type prompter interface {
	Input(message, help, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
	Choose(message string, options []string, def string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, help, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Help: help, Default: def}, &out)
	return out, err
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, err
}

func (surveyPrompter) Choose(message string, options []string, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Select{Message: message, Options: options, Default: def}, &out)
	return out, err
}

func newPromptCmd() *cobra.Command {
	var flags rendererFlags

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Build one field group interactively and print its HTML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			group, err := askGroup(surveyPrompter{})
			if err != nil {
				if errors.Is(err, terminal.InterruptErr) {
					return nil
				}
				return err
			}

			renderer, err := flags.renderer()
			if err != nil {
				return err
			}
			doc := &fragment.Document{Groups: []fragment.Group{group}}
			html, err := doc.Render(renderer)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		},
	}
	flags.bind(cmd)
	return cmd
}

func askGroup(p prompter) (fragment.Group, error) {
	id, err := p.Input("Field id:", "Used for the control id and the {id}-error message id.", "")
	if err != nil {
		return fragment.Group{}, err
	}
	id = strings.TrimSpace(id)

	name, err := p.Input("Field name:", "", id)
	if err != nil {
		return fragment.Group{}, err
	}
	label, err := p.Input("Label text:", "", "")
	if err != nil {
		return fragment.Group{}, err
	}
	kind, err := p.Choose("Control:", []string{fragment.KindInput, fragment.KindTextarea, fragment.KindSelect}, fragment.KindInput)
	if err != nil {
		return fragment.Group{}, err
	}
	required, err := p.Confirm("Required?", false)
	if err != nil {
		return fragment.Group{}, err
	}
	message, err := p.Input("Error message (blank for none):", "", "")
	if err != nil {
		return fragment.Group{}, err
	}

	elements := make([]fragment.Element, 0, 3)
	if label = strings.TrimSpace(label); label != "" {
		elements = append(elements, fragment.Element{Kind: fragment.KindLabel, Text: label})
	}
	elements = append(elements,
		fragment.Element{Kind: kind},
		fragment.Element{Kind: fragment.KindError},
	)

	return fragment.Group{
		Context: &field.Context{
			ID:       id,
			Name:     strings.TrimSpace(name),
			Required: required,
			Error:    strings.TrimSpace(message),
		},
		Elements: elements,
	}, nil
}
