package sortable

import "cmp"

// Int is a sortable wrapper type for the built-in int type.
// Convert back with a type conversion: int(i).
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = Int(0)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return i < other
}

// Compare returns -1, 0 or +1 as this Int is less than, equal to or greater than other.
func (i Int) Compare(other Int) int {
	return cmp.Compare(i, other)
}

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

// Compile-time check that Byte implements Sortable[Byte].
var _ Sortable[Byte] = Byte(0)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return b == other
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return b < other
}

// Compare returns -1, 0 or +1 as this Byte is less than, equal to or greater than other.
func (b Byte) Compare(other Byte) int {
	return cmp.Compare(b, other)
}

// String is a sortable wrapper type for the built-in string type.
// Strings order by their bytes; see compare.ByCollator for language-aware order.
type String string

// Compile-time check that String implements Sortable[String].
var _ Sortable[String] = String("")

// Equals returns true if both strings are byte-for-byte identical.
func (s String) Equals(other String) bool {
	return s == other
}

// LessThan returns true if this String sorts before the other String in byte order.
func (s String) LessThan(other String) bool {
	return s < other
}

// Compare returns -1, 0 or +1 as this String sorts before, equal to or after other.
func (s String) Compare(other String) int {
	return cmp.Compare(s, other)
}
