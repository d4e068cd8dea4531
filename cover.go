package dlx

// cover hides column c and every row intersecting it, in place. c must be
// a currently-live column header. cover and uncover are exact inverses:
// any balanced sequence of calls restores the mesh to its prior link
// topology and value fields bit-for-bit.
func cover(c *node) {
	unlinkLR(c)
	for r := c.down; r != c; r = r.down {
		// r itself keeps its vertical link into c: c is the column being
		// covered, and r must stay addressable so uncover can walk back
		// over it later.
		for p := r.right; p != r; p = p.right {
			unlinkTB(p)
			p.header.value--
		}
	}
}

// uncover is cover played in reverse, node-for-node: both the outer
// (top/bottom) and inner (right/left) traversal directions are mirrored
// relative to cover, which is what lets relinkTB reuse the up/down
// pointers a node still carries from before it was unlinked.
func uncover(c *node) {
	for r := c.up; r != c; r = r.up {
		for p := r.left; p != r; p = p.left {
			p.header.value++
			relinkTB(p)
		}
	}
	relinkLR(c)
}
