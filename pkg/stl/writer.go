package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/geodome/pkg/geometry"
)

// Format selects ASCII or binary STL output
type Format string

// Supported output formats
const (
	FormatBinary Format = "binary"
	FormatASCII  Format = "ascii"
)

// ParseFormat accepts "binary" or "ascii"
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatBinary, "bin", "":
		return FormatBinary, nil
	case FormatASCII, "text":
		return FormatASCII, nil
	}
	return "", fmt.Errorf("unknown STL format %q (want binary or ascii)", value)
}

// Save writes the model to path, creating the parent directory if needed
func Save(path string, model *Model, format Format) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, model, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Write encodes the model in the given format
func Write(w io.Writer, model *Model, format Format) error {
	switch format {
	case FormatASCII:
		return WriteASCII(w, model)
	case FormatBinary:
		return WriteBinary(w, model)
	}
	return fmt.Errorf("unknown STL format %q", format)
}

// WriteASCII writes the model as ASCII STL. Coordinates are written with
// the shortest representation that parses back to the same float64.
func WriteASCII(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)
	name := strings.TrimSpace(model.Name)

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, f := range model.Facets {
		fmt.Fprintf(bw, "  facet normal %s\n", formatVector(f.Normal))
		bw.WriteString("    outer loop\n")
		for _, v := range f.Vertices() {
			fmt.Fprintf(bw, "      vertex %s\n", formatVector(v))
		}
		bw.WriteString("    endloop\n")
		bw.WriteString("  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

func formatVector(v geometry.Vector3) string {
	return strconv.FormatFloat(v.X, 'g', -1, 64) + " " +
		strconv.FormatFloat(v.Y, 'g', -1, 64) + " " +
		strconv.FormatFloat(v.Z, 'g', -1, 64)
}

// WriteBinary writes the model as binary STL with float32 coordinates
func WriteBinary(w io.Writer, model *Model) error {
	if uint64(len(model.Facets)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles for binary STL: %d", len(model.Facets))
	}

	bw := bufio.NewWriter(w)

	// A header starting with "solid" would be mistaken for ASCII.
	header := make([]byte, 80)
	name := model.Name
	if strings.HasPrefix(name, "solid") {
		name = "binary " + name
	}
	copy(header, name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(model.Facets))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	var record struct {
		Normal, V1, V2, V3 [3]float32
		Attribute          uint16
	}
	for i, f := range model.Facets {
		record.Normal = float32s(f.Normal)
		record.V1 = float32s(f.V1)
		record.V2 = float32s(f.V2)
		record.V3 = float32s(f.V3)
		if err := binary.Write(bw, binary.LittleEndian, &record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write binary STL: %w", err)
	}
	return nil
}

func float32s(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
