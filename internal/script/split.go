package script

import (
	"time"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Split turns an authored string into one text node per grapheme cluster,
// each with the given per-keystroke delay.
//
// The string is NFC-normalized first so that a combining sequence and its
// precomposed form produce the same node sequence. Cluster segmentation
// follows UAX #29, so emoji with modifiers and ZWJ sequences stay intact
// as a single typed unit.
func Split(text string, delay time.Duration) []Node {
	text = norm.NFC.String(text)

	var nodes []Node
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		nodes = append(nodes, Node{
			Kind:  KindText,
			Value: g.Str(),
			Delay: delay,
		})
	}
	return nodes
}
