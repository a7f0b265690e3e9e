package hwy

// Broadcast broadcasts a single lane to all lanes in the vector.
func Broadcast[T Floats](v Vec[T], lane int) Vec[T] {
	if lane < 0 || lane >= v.n {
		// Return zero vector if lane is out of bounds
		return ZeroN[T](v.n)
	}
	return SetN(v.data[lane], v.n)
}

// GetLane extracts a single lane value from the vector.
// Returns zero value if index is out of bounds.
func GetLane[T Floats](v Vec[T], idx int) T {
	if idx < 0 || idx >= v.n {
		var zero T
		return zero
	}
	return v.data[idx]
}

// InsertLane returns a new vector with the value inserted at the given lane.
// Out-of-range indices return v unchanged.
func InsertLane[T Floats](v Vec[T], idx int, val T) Vec[T] {
	if idx < 0 || idx >= v.n {
		return v
	}
	v.data[idx] = val
	return v
}
