package content

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and validates a TOML catalog from path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content file: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// Decode parses and validates a TOML catalog. Unknown keys are rejected.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &c, nil
}

// Export writes c as TOML in the format Load accepts.
func Export(w io.Writer, c *Catalog) error {
	var buf bytes.Buffer
	buf.WriteString("# wiifolio content catalog\n\n")
	enc := toml.NewEncoder(&buf).SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Resolve returns the catalog at path, or Default when path is empty.
func Resolve(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
