package trial

import "strings"

// NormaliseText applies the corpus text normalisation to a leaf value:
// whitespace runs collapse to one space, the ends are trimmed, then every
// ": " and every " - " is replaced by a single space, in that order.
//
// The substitutions are literal and unconditional. Downstream consumers
// depend on the exact output, so they must not be generalised.
func NormaliseText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, ": ", " ")
	return strings.ReplaceAll(s, " - ", " ")
}
