package dlx

// node is the sole structural entity in the mesh. Every node carries four
// lifetime-equal links and a header back-reference; the same struct plays
// four different roles distinguished only by how it is linked in, never by
// a type tag:
//
//   - the root sentinel (exactly one), anchoring the horizontal list of
//     live column headers, and separately anchoring a row-allocation list
//     through its up/down links so every row allocation can be freed;
//   - a column header (one per column index ever referenced), anchoring
//     the vertical list of row-nodes in that column; its value field holds
//     the column's live row-count;
//   - a row anchor (one per row), which belongs to no column and is not
//     reachable horizontally from the column list; it threads the row
//     onto the row-allocation list and its right link points at the row's
//     first row-node (the anchor itself is not on the row's horizontal
//     circle);
//   - a row-node (one per 1-bit of the matrix), belonging to exactly one
//     column's vertical list and one row's horizontal circular list,
//     carrying the owning row's Tag as value.
type node struct {
	left, right, up, down *node
	header                *node
	value                 Tag
}

// loopSelf makes n a singleton circular list in both directions, the
// standard starting state for a root sentinel or a fresh column header.
func loopSelf(n *node) {
	n.left, n.right = n, n
	n.up, n.down = n, n
}

// linkLR links l and r as horizontal neighbors: l.right = r, r.left = l.
func linkLR(l, r *node) {
	l.right = r
	r.left = l
}

// unlinkLR removes p from its horizontal list by bridging its neighbors.
// p's own left/right pointers are left untouched, which is the Dancing
// Links property: p remembers how to find its way back in.
func unlinkLR(p *node) {
	linkLR(p.left, p.right)
}

// relinkLR restores p into its horizontal list using p's own (untouched)
// neighbor pointers.
func relinkLR(p *node) {
	p.left.right = p
	p.right.left = p
}

// linkTB links t and b as vertical neighbors: t.down = b, b.up = t.
func linkTB(t, b *node) {
	t.down = b
	b.up = t
}

// unlinkTB removes p from its vertical list by bridging its neighbors.
func unlinkTB(p *node) {
	linkTB(p.up, p.down)
}

// relinkTB restores p into its vertical list using p's own neighbors.
func relinkTB(p *node) {
	p.up.down = p
	p.down.up = p
}
