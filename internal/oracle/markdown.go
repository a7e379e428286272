package oracle

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractFencedBlock pulls the first fenced code block out of model output.
// When infoLang is non-empty only fences tagged with that language count;
// untagged fences are accepted either way since models are sloppy about info
// strings. Falls back to the trimmed output itself when it already looks
// like a bare JSON document and no fence was found.
func ExtractFencedBlock(output, infoLang string) (string, bool) {
	src := []byte(output)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var block []byte
	found := false

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lang := strings.TrimSpace(string(fcb.Language(src)))
		if infoLang != "" && lang != "" && !strings.EqualFold(lang, infoLang) {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		block = buf.Bytes()
		found = true
		return ast.WalkStop, nil
	})

	if found {
		return string(block), true
	}

	trimmed := strings.TrimSpace(output)
	if infoLang == "json" && (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) {
		return trimmed, true
	}
	return "", false
}
