package fixture

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mj1618/captvty-nav/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultScrollPixels is how far one wheel step moves a scroll container.
const DefaultScrollPixels = 40

// Document is a recorded foreground window as stored on disk.
type Document struct {
	App   string `yaml:"app"   json:"app"`
	Title string `yaml:"title" json:"title"`
	// ScrollContainers lists child-index paths (e.g. "2/1") of scrollable elements.
	ScrollContainers []string `yaml:"scroll_containers,omitempty" json:"scroll_containers,omitempty"`
	ScrollPixels     int      `yaml:"scroll_pixels,omitempty"     json:"scroll_pixels,omitempty"`
	// Answers are replayed, in order, by the chooser dialog.
	Answers []string      `yaml:"answers,omitempty" json:"answers,omitempty"`
	Root    model.Element `yaml:"root"              json:"root"`
}

// LoadFile reads a Document from a YAML file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML Document and normalizes it: roles are mapped to
// compact codes and IDs are assigned in depth-first order.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	doc.Normalize()
	for _, p := range doc.ScrollContainers {
		if _, err := resolvePath(&doc.Root, p); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}

// Normalize maps roles and renumbers IDs depth-first from 1.
func (d *Document) Normalize() {
	if d.ScrollPixels <= 0 {
		d.ScrollPixels = DefaultScrollPixels
	}
	next := 1
	var walk func(el *model.Element)
	walk = func(el *model.Element) {
		el.ID = next
		next++
		el.Role = model.MapRole(el.Role)
		for i := range el.Children {
			walk(&el.Children[i])
		}
	}
	walk(&d.Root)
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// resolvePath follows a "/"-separated child-index path from root.
func resolvePath(root *model.Element, path string) (*model.Element, error) {
	if path == "" {
		return root, nil
	}
	parts := strings.Split(path, "/")
	idx := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid scroll container path %q: %w", path, err)
		}
		idx[i] = n
	}
	el := root.Child(idx...)
	if el == nil {
		return nil, fmt.Errorf("scroll container path %q does not exist", path)
	}
	return el, nil
}
