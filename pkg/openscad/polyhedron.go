// Package openscad writes indexed meshes as OpenSCAD polyhedron source.
package openscad

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/geodome/pkg/mesh"
)

// Options controls the generated source
type Options struct {
	// Module is the module name; derived from the file name when empty
	Module string
	// Scale multiplies the unit mesh when the module is instantiated; 0 means 1
	Scale float64
}

// ModuleName turns an arbitrary name into an OpenSCAD identifier
func ModuleName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '_' || r == '-' || r == ' ' || r == '.':
			b.WriteRune('_')
		}
	}
	id := strings.Trim(b.String(), "_")
	if id == "" {
		return "geodome"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "dome_" + id
	}
	return id
}

// WritePolyhedron writes m as a module wrapping a single polyhedron and an
// instantiation of it. OpenSCAD expects faces clockwise seen from outside,
// so every face is written with its winding reversed. A half dome is an
// open surface: it previews fine but is not a valid solid for CSG.
func WritePolyhedron(w io.Writer, m *mesh.IndexedMesh, opts Options) error {
	module := opts.Module
	if module == "" {
		module = "geodome"
	}
	module = ModuleName(module)

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// %d vertices, %d faces\n", len(m.Vertices), len(m.Faces))
	fmt.Fprintf(bw, "module %s() {\n", module)
	bw.WriteString("  polyhedron(\n    points = [\n")
	for i, v := range m.Vertices {
		fmt.Fprintf(bw, "      [%s, %s, %s]", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
		writeSeparator(bw, i, len(m.Vertices))
	}
	bw.WriteString("    ],\n    faces = [\n")
	for i, f := range m.Faces {
		fmt.Fprintf(bw, "      [%d, %d, %d]", f[0], f[2], f[1])
		writeSeparator(bw, i, len(m.Faces))
	}
	bw.WriteString("    ]\n  );\n}\n\n")

	if opts.Scale != 0 && opts.Scale != 1 {
		fmt.Fprintf(bw, "scale(%s) %s();\n", formatFloat(opts.Scale), module)
	} else {
		fmt.Fprintf(bw, "%s();\n", module)
	}

	return bw.Flush()
}

// Save writes the polyhedron to path, creating the parent directory if needed.
// The module is named after the file when opts.Module is empty.
func Save(path string, m *mesh.IndexedMesh, opts Options) error {
	if opts.Module == "" {
		opts.Module = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WritePolyhedron(file, m, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeSeparator(w *bufio.Writer, i, n int) {
	if i < n-1 {
		w.WriteString(",\n")
	} else {
		w.WriteString("\n")
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
