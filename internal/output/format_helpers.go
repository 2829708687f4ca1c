package output

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// Romanize renders a Chinese name in pinyin for latin-script contexts.
// Non-Han characters pass through unchanged.
func Romanize(name string) string {
	args := pinyin.NewArgs()
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	parts := pinyin.LazyPinyin(name, args)
	return strings.Join(parts, " ")
}

// sectionRule draws a heavy divider line.
func sectionRule(b *strings.Builder) {
	b.WriteString(strings.Repeat("=", 64))
	b.WriteString("\n")
}

// subRule draws a light divider line.
func subRule(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", 64))
	b.WriteString("\n")
}
