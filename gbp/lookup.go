package gbp

// ClassOf returns the Grapheme_Cluster_Break class of cp. Table lookup is
// total: an unassigned or out-of-range cp yields Other.
func ClassOf(cp rune) Class {
	c, _, _ := unpack(table.Lookup(cp))
	return c
}

// IndicOf returns the Indic_Conjunct_Break class of cp (GB9c).
func IndicOf(cp rune) Indic {
	_, ind, _ := unpack(table.Lookup(cp))
	return ind
}

// IsExtendedPictographic reports whether cp carries the
// Extended_Pictographic property (used by GB11 and by emoji-aware width
// calculation).
func IsExtendedPictographic(cp rune) bool {
	_, _, ext := unpack(table.Lookup(cp))
	return ext
}

// Lookup returns all three properties of cp in one table access, avoiding
// three redundant lookups when a caller needs more than one of them.
func Lookup(cp rune) (Class, Indic, bool) {
	return unpack(table.Lookup(cp))
}
