package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an on-disk encoding of a scene description.
type Format string

// Supported description formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for files whose extension is not a known format.
var ErrUnknownFormat = errors.New("unknown scene description format")

var validate = validator.New()

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// LoadFile reads and validates a scene description file.
func LoadFile(path string) (*Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	resolveSources(root, filepath.Dir(path))
	return root, nil
}

// Decode parses and validates a scene description.
func Decode(data []byte, format Format) (*Node, error) {
	root := &Node{}

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, root)
	case FormatJSON:
		err = json.Unmarshal(data, root)
	case FormatTOML:
		err = toml.Unmarshal(data, root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	if err := Validate(root); err != nil {
		return nil, err
	}
	return root, nil
}

// Validate checks field constraints across the whole tree.
func Validate(root *Node) error {
	if root == nil {
		return errors.New("empty scene description")
	}
	if err := validate.Struct(root); err != nil {
		return fmt.Errorf("invalid scene description: %w", err)
	}
	return nil
}

// Encode writes a description in the given format.
func Encode(root *Node, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(root)
	case FormatJSON:
		return json.MarshalIndent(root, "", "  ")
	case FormatTOML:
		return toml.Marshal(root)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// resolveSources makes relative mesh paths relative to the description file.
func resolveSources(n *Node, dir string) {
	if n.Type == TypeMesh && n.Src != "" && !filepath.IsAbs(n.Src) {
		n.Src = filepath.Join(dir, n.Src)
	}
	for _, c := range n.Nodes {
		resolveSources(c, dir)
	}
}
