package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// wrapText wraps text to the given display width, breaking on words where
// possible and on grapheme clusters for words wider than a whole line.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		lineWidth := 0
		for _, word := range strings.Split(raw, " ") {
			w := runewidth.StringWidth(word)

			if lineWidth > 0 && lineWidth+1+w > width {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			if lineWidth > 0 {
				line.WriteByte(' ')
				lineWidth++
			}

			if w > width {
				// Hard-break an over-long word on grapheme boundaries.
				for _, part := range splitGraphemes(word, width-lineWidth, width) {
					if lineWidth > 0 {
						line.WriteString(part)
						lines = append(lines, line.String())
						line.Reset()
						lineWidth = 0
					} else {
						lines = append(lines, part)
					}
				}
				// splitGraphemes keeps the final fragment for the current line.
				last := lines[len(lines)-1]
				lines = lines[:len(lines)-1]
				line.WriteString(last)
				lineWidth = runewidth.StringWidth(line.String())
				continue
			}

			line.WriteString(word)
			lineWidth += w
		}
		lines = append(lines, line.String())
	}
	return lines
}

// splitGraphemes splits s into chunks no wider than width; the first chunk is
// at most firstWidth wide.
func splitGraphemes(s string, firstWidth, width int) []string {
	if firstWidth <= 0 {
		firstWidth = width
	}

	var chunks []string
	var chunk strings.Builder
	limit := firstWidth
	chunkWidth := 0

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if chunkWidth+w > limit && chunkWidth > 0 {
			chunks = append(chunks, chunk.String())
			chunk.Reset()
			chunkWidth = 0
			limit = width
		}
		chunk.WriteString(cluster)
		chunkWidth += w
	}
	if chunk.Len() > 0 || len(chunks) == 0 {
		chunks = append(chunks, chunk.String())
	}
	return chunks
}

// renderMessageBody renders message content with word wrapping and
// syntax-highlighted fenced code blocks.
func renderMessageBody(content string, width int) string {
	var result strings.Builder
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlock strings.Builder

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				codeBlock.Reset()
			} else {
				inCodeBlock = false
				result.WriteString(highlightCode(codeBlock.String(), codeBlockLang))
				result.WriteString("\n")
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlock.Len() > 0 {
				codeBlock.WriteString("\n")
			}
			codeBlock.WriteString(line)
			continue
		}

		for _, wrapped := range wrapText(line, width) {
			result.WriteString(wrapped)
			result.WriteString("\n")
		}
	}

	// Unterminated code block: render what we have.
	if inCodeBlock {
		result.WriteString(highlightCode(codeBlock.String(), codeBlockLang))
	}

	return strings.TrimRight(result.String(), "\n")
}

// highlightCode renders a fenced code block with chroma for the terminal.
// On any failure the raw code is returned unstyled.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return code
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}
