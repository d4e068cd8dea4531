/*
Package dlx implements an exact-cover solver using Knuth's Dancing Links
technique (DLX), realized over Algorithm X.

Given a 0/1 matrix whose rows carry caller-supplied opaque tags and whose
columns represent constraints, a Matrix built one row at a time enumerates
every subset of rows such that each column is covered by exactly one
selected row. Solutions are reported through a callback passed to Search,
with an optional bound on the number of solutions enumerated.

The matrix is a toroidal quad-linked sparse mesh: a root sentinel anchors
the horizontal list of column headers, each header anchors the vertical
list of rows touching that column, and cover/uncover are exact inverses
that hide and restore a column and every row intersecting it in place.

	m := dlx.NewMatrix(0)
	m.AddRow(dlx.Tag(1), []uint{0, 3, 6})
	m.AddRow(dlx.Tag(2), []uint{0, 3})
	// ...
	m.Search(^uint64(0), func(index uint64, tags []dlx.Tag, depth int) {
		// tags holds one Tag per selected row
	})

This package is not safe for concurrent use: no two searches may run
against the same Matrix at once, and no row may be added while a search
is in progress. Independent Matrix values may be searched concurrently.
*/
package dlx
