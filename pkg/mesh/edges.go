package mesh

// Edge is an undirected edge between two vertex indices, A < B
type Edge struct {
	A, B int
	// Faces is the number of faces using the edge
	Faces int
}

// Edges lists the distinct edges of the mesh in first-seen order
func (m *IndexedMesh) Edges() []Edge {
	index := make(map[[2]int]int, len(m.Faces)*3/2)
	edges := make([]Edge, 0, len(m.Faces)*3/2)

	for _, f := range m.Faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if i, ok := index[key]; ok {
				edges[i].Faces++
				continue
			}
			index[key] = len(edges)
			edges = append(edges, Edge{A: a, B: b, Faces: 1})
		}
	}
	return edges
}

// BoundaryEdges returns the edges used by exactly one face
func BoundaryEdges(edges []Edge) []Edge {
	var boundary []Edge
	for _, e := range edges {
		if e.Faces == 1 {
			boundary = append(boundary, e)
		}
	}
	return boundary
}

// EulerCharacteristic returns V - E + F: 2 for a closed sphere-like mesh,
// 1 for a dome or any other disc
func (m *IndexedMesh) EulerCharacteristic() int {
	return len(m.Vertices) - len(m.Edges()) + len(m.Faces)
}
