package backend

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// paragraphs splits free text into reflowed paragraphs wrapped at width.
// Lines consisting only of "*" are continuation debris from source comment
// blocks and are dropped; a leading "* " marker is stripped.
func paragraphs(text string, width int) [][]string {
	var (
		out [][]string
		cur []string
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		joined := strings.Join(cur, " ")
		out = append(out, strings.Split(wordwrap.WrapString(joined, uint(width)), "\n"))
		cur = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "*" {
			continue
		}
		line = strings.TrimPrefix(line, "* ")
		if line == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return out
}

// commentBlock renders paragraphs with a line prefix. Paragraphs are
// separated by a line holding the trimmed prefix.
func commentBlock(text string, width int, prefix string) string {
	paras := paragraphs(text, width-len(prefix))
	if len(paras) == 0 {
		return ""
	}

	var b strings.Builder
	for i, para := range paras {
		if i > 0 {
			b.WriteString(strings.TrimRight(prefix, " "))
			b.WriteByte('\n')
		}
		for _, line := range para {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
