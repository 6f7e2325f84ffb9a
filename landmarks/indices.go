package landmarks

// Eyebrow point indices into the face mesh, ordered tail-to-head along each
// brow. Only these subsets of the mesh are consumed by the overlay.
var (
	LeftEyebrow  = []int{70, 63, 105, 66, 107, 55, 65, 52, 53}
	RightEyebrow = []int{300, 293, 334, 296, 336, 285, 295, 282, 283}
)
