package mesh

// JoinStrips concatenates strips into one index buffer, separated by
// RestartIndex. Empty strips are skipped.
func JoinStrips(strips ...[]uint32) []uint32 {
	n := 0
	for _, s := range strips {
		n += len(s) + 1
	}

	joined := make([]uint32, 0, n)
	for _, s := range strips {
		if len(s) == 0 {
			continue
		}
		if len(joined) > 0 {
			joined = append(joined, RestartIndex)
		}
		joined = append(joined, s...)
	}
	return joined
}

// StripTriangles expands a triangle strip into the triangles it draws, in
// strip order. Winding is not normalized. A RestartIndex starts a new strip.
func StripTriangles(indices []uint32) [][3]uint32 {
	var triangles [][3]uint32

	start := 0
	for i := 0; i <= len(indices); i++ {
		if i < len(indices) && indices[i] != RestartIndex {
			continue
		}
		strip := indices[start:i]
		for j := 2; j < len(strip); j++ {
			triangles = append(triangles, [3]uint32{strip[j-2], strip[j-1], strip[j]})
		}
		start = i + 1
	}
	return triangles
}
