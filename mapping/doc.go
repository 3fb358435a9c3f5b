// Package mapping provides nil-safe path lookups over decoded JSON and a
// declarative projection helper used to reshape provider records into the
// adapter's public output shape.
//
// A projection is an ordered table of (attribute, extractor) pairs. An
// attribute appears in the output only when its extractor yields a value;
// extractors traversing absent intermediate nodes yield nothing instead of
// failing.
//
//	out := mapping.Project(rec, mapping.Table{
//	    {Attr: "id", Get: mapping.Path("reference", "bookingID")},
//	    {Attr: "price", Get: mapping.Path("price")},
//	})
package mapping
