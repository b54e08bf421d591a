package fragment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/ui"
)

// Element kinds accepted in documents.
const (
	KindLabel    = "label"
	KindInput    = "input"
	KindSelect   = "select"
	KindTextarea = "textarea"
	KindError    = "error"
	KindMarkup   = "markup"
)

// Document is a list of field groups rendered in order.
type Document struct {
	Title  string  `json:"title" yaml:"title"`
	Groups []Group `json:"groups" yaml:"groups" validate:"required,min=1,dive"`
}

// Group describes one field group and its elements.
type Group struct {
	Class    string         `json:"class" yaml:"class"`
	Context  *field.Context `json:"context" yaml:"context"`
	Props    field.Props    `json:"props" yaml:"props"`
	Elements []Element      `json:"elements" yaml:"elements" validate:"required,min=1,dive"`
}

// Element describes one element of a group. Text is the inner markup for
// labels, errors and markup blocks and the extra option markup for selects.
type Element struct {
	Kind    string      `json:"kind" yaml:"kind" validate:"required,oneof=label input select textarea error markup"`
	Text    string      `json:"text" yaml:"text"`
	Props   field.Props `json:"props" yaml:"props"`
	Resize  string      `json:"resize" yaml:"resize" validate:"omitempty,oneof=x y xy both none true false"`
	Options []ui.SelectOption `json:"options" yaml:"options" validate:"dive"`
}

var validate = validator.New()

// Parse decodes and validates a document. YAML is a superset of JSON, so
// both formats are accepted. name is only used in error messages.
func Parse(data []byte, name string) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("fragment: %s is empty", name)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("fragment: decode %s: %w", name, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("fragment: invalid document %s: %w", name, err)
	}
	return &doc, nil
}

// LoadFile reads and parses a document from disk.
func LoadFile(path string) (*Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("fragment: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fragment: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses a document from fsys.
func LoadFS(fsys fs.FS, path string) (*Document, error) {
	if fsys == nil {
		return nil, errors.New("fragment: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("fragment: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Nodes converts the document into one ui.Group per document group.
func (d *Document) Nodes() []ui.Node {
	if d == nil {
		return nil
	}
	nodes := make([]ui.Node, 0, len(d.Groups))
	for _, group := range d.Groups {
		nodes = append(nodes, group.Node())
	}
	return nodes
}

// Node converts the group into a ui.Group.
func (g Group) Node() ui.Group {
	children := make([]ui.Node, 0, len(g.Elements))
	for _, element := range g.Elements {
		if node := element.Node(); node != nil {
			children = append(children, node)
		}
	}
	return ui.Group{
		Context:  g.Context,
		Class:    g.Class,
		Props:    g.Props,
		Children: children,
	}
}

// Node converts the element into the matching ui node, or nil for an
// unknown kind.
func (e Element) Node() ui.Node {
	switch strings.ToLower(strings.TrimSpace(e.Kind)) {
	case KindLabel:
		return ui.Label{Props: e.Props, Children: e.Text}
	case KindInput:
		return ui.Input{Props: e.Props}
	case KindSelect:
		return ui.Select{Props: e.Props, Options: e.Options, Children: e.Text}
	case KindTextarea:
		resize, _ := ui.ParseResize(e.Resize)
		return ui.Textarea{Props: e.Props, Resize: resize}
	case KindError:
		return ui.Error{Props: e.Props, Children: e.Text}
	case KindMarkup:
		return ui.Markup(e.Text)
	default:
		return nil
	}
}

// Render renders every group of the document with r, concatenated.
func (d *Document) Render(r *ui.Renderer) (string, error) {
	var out strings.Builder
	for idx, node := range d.Nodes() {
		markup, err := r.Render(nil, node)
		if err != nil {
			return "", fmt.Errorf("fragment: render group %d: %w", idx, err)
		}
		out.WriteString(markup)
		out.WriteByte('\n')
	}
	return out.String(), nil
}
