package symbols

import "golang.org/x/text/unicode/norm"

// FoldName returns the NFC-normalized form of an element name, used to
// compare unrestricted names ('My Part' vs a differently-composed
// 'My Part') for equality in the duplicate-name checks. A bare identifier
// is ASCII per §4.1 and already in normal form, so this is a no-op for the
// common case and only does work for unrestricted names carrying combining
// marks.
func FoldName(name string) string {
	if norm.NFC.IsNormalString(name) {
		return name
	}
	return norm.NFC.String(name)
}
