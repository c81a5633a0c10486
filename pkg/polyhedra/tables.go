package polyhedra

import "math"

// negZero keeps the sign of the "-0.000000" entries in the source tables.
var negZero = math.Copysign(0, -1)

var icosahedronFull = table{
	verts: [][3]float64{
		{0.000000, 0.894427, 0.447214}, {0.000000, 0.000000, 1.000000},
		{negZero, -0.894427, -0.447214}, {0.850651, 0.276393, 0.447214},
		{0.525731, -0.723607, 0.447214}, {0.850651, -0.276393, -0.447214},
		{0.525731, 0.723607, -0.447214}, {-0.525731, 0.723607, -0.447214},
		{-0.525731, -0.723607, 0.447214}, {-0.850651, 0.276393, 0.447214},
		{negZero, negZero, -1.000000}, {-0.850651, -0.276393, -0.447214},
	},
	faces: []Face{
		{3, 0, 1}, {1, 0, 9}, {9, 8, 1}, {8, 4, 1}, {4, 3, 1}, {6, 7, 0}, {7, 11, 9},
		{11, 2, 8}, {2, 5, 4}, {5, 6, 3}, {4, 8, 2}, {3, 4, 5}, {6, 0, 3}, {9, 0, 7},
		{8, 9, 11}, {5, 2, 10}, {6, 5, 10}, {7, 6, 10}, {11, 7, 10}, {2, 11, 10},
	},
}

var icosahedronHalf = table{
	verts: [][3]float64{
		{0.309017, -0.951057, 0.000000}, {-0.309017, 0.951057, 0.000000},
		{-0.850651, 0.276393, 0.447214}, {-0.809017, 0.587785, 0.000000},
		{1.000000, 0.000000, 0.000000}, {0.809017, -0.262866, 0.525731},
		{-0.309017, -0.425325, 0.850651}, {0.000000, 0.000000, 1.000000},
		{0.000000, 0.894427, 0.447214}, {-0.525731, -0.723607, 0.447214},
		{-0.500000, 0.688191, 0.525732}, {0.000000, 0.525731, 0.850651},
		{0.500000, 0.688191, 0.525732}, {-0.500000, 0.162460, 0.850651},
		{0.525731, -0.723607, 0.447214}, {-1.000000, 0.000000, 0.000000},
		{0.309017, -0.425325, 0.850651}, {0.809017, 0.587785, 0.000000},
		{-0.809017, -0.262866, 0.525731}, {0.809017, -0.587785, 0.000000},
		{0.850651, 0.276393, 0.447214}, {-0.809017, -0.587785, 0.000000},
		{0.000000, -0.850651, 0.525731}, {0.309017, 0.951057, 0.000000},
		{0.500000, 0.162460, 0.850651}, {-0.309017, -0.951057, 0.000000},
	},
	faces: []Face{
		{11, 7, 24}, {12, 24, 20}, {8, 11, 12}, {11, 24, 12}, {10, 2, 13}, {11, 13, 7},
		{8, 10, 11}, {10, 13, 11}, {6, 7, 13}, {18, 13, 2}, {9, 6, 18}, {6, 13, 18},
		{16, 7, 6}, {22, 6, 9}, {14, 16, 22}, {16, 6, 22}, {24, 7, 16}, {5, 16, 14},
		{20, 24, 5}, {24, 16, 5}, {1, 8, 23}, {15, 2, 3}, {25, 9, 21}, {0, 19, 14},
		{17, 20, 4}, {22, 0, 14}, {9, 25, 22}, {25, 0, 22}, {5, 4, 20}, {14, 19, 5},
		{19, 4, 5}, {12, 20, 17}, {8, 12, 23}, {12, 17, 23}, {10, 3, 2}, {8, 1, 10},
		{1, 3, 10}, {18, 21, 9}, {2, 15, 18}, {15, 21, 18},
	},
}

var octahedronFull = table{
	verts: [][3]float64{
		{0.0, 0.0, 1.0}, {1.0, 0.0, 0.0}, {0.0, 0.0, -1.0},
		{0.0, 1.0, 0.0}, {-1.0, 0.0, 0.0}, {0.0, -1.0, 0.0},
	},
	faces: []Face{
		{1, 3, 0}, {3, 4, 0}, {4, 5, 0}, {5, 1, 0}, {1, 5, 2}, {3, 1, 2}, {4, 3, 2}, {5, 4, 2},
	},
}

var octahedronHalf = table{
	verts: [][3]float64{
		{0.0, 0.0, 1.0}, {1.0, 0.0, 0.0}, {0.0, 1.0, 0.0}, {-1.0, 0.0, 0.0}, {0.0, -1.0, 0.0},
	},
	faces: []Face{
		{1, 2, 0}, {2, 3, 0}, {3, 4, 0}, {4, 1, 0},
	},
}

var tetrahedronFull = table{
	verts: [][3]float64{
		{0.000000, 0.000000, 0.612372}, {0.000000, 0.577350, -0.204124},
		{-0.500000, -0.288675, -0.204124}, {0.500000, -0.288675, -0.204124},
	},
	faces: []Face{
		{2, 0, 1}, {3, 0, 2}, {1, 0, 3}, {2, 1, 3},
	},
}

var tetrahedronHalf = table{
	verts: [][3]float64{
		{0.000000, 0.000000, 0.816496}, {0.000000, 0.577350, 0.000000},
		{-0.500000, -0.288675, 0.000000}, {0.500000, -0.288675, 0.000000},
	},
	faces: []Face{
		{2, 0, 1}, {3, 0, 2}, {1, 0, 3},
	},
}

var triangleFull = table{
	verts: [][3]float64{
		{0.816497, -0.471405, 1.000000}, {-0.816497, -0.471405, 1.000000},
		{0.000000, 0.942809, 1.000000},
	},
	faces: []Face{
		{1, 2, 0},
	},
}
