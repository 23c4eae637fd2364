package slug

import (
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// replace substitutes custom replacements in text, scanning left to right and
// preferring the longest key at each position. Bytes which are not valid UTF-8
// are copied unchanged.
func (s *Slugifier) replace(text string) string {
	if s.replacements == nil {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		end, subst := longestMatch(s.replacements.Root(), text[i:])
		if end > 0 {
			b.WriteString(subst)
			i += end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// longestMatch walks the trie along text and returns the length of the longest
// key which is a prefix of text, together with its replacement. It returns
// 0 if no key matches.
func longestMatch(node *trie.Node, text string) (int, string) {
	end, subst := 0, ""
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == 0 || r == utf8.RuneError && size <= 1 {
			break
		}
		next, ok := node.Children()[r]
		if !ok {
			break
		}
		node = next
		i += size
		if leaf, ok := node.Children()[0]; ok && leaf.Terminating() {
			end, subst = i, leaf.Meta().(string)
		}
	}
	return end, subst
}
