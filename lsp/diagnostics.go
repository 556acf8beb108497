package lsp

import (
	"sort"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/lune/compiler"
	"github.com/dhamidi/lune/grammar"
)

// Diagnostics converts a file's compile result. A file that compiled yields
// an empty, non-nil slice so the client clears earlier diagnostics.
func Diagnostics(f *compiler.File) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	if f == nil || f.Err == nil {
		return diags
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	d := protocol.Diagnostic{
		Severity: &severity,
		Source:   &source,
		Message:  f.Err.Error(),
	}
	if perr := f.ParseError(); perr != nil {
		d.Range = errorRange(perr)
		d.Message = perr.Msg
	}
	return append(diags, d)
}

// errorRange covers the character at the error. Parse positions count lines
// from 1; the protocol counts from 0.
func errorRange(perr *grammar.ParseError) protocol.Range {
	line := perr.Line - 1
	if line < 0 {
		line = 0
	}
	start := protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(perr.Column)}
	end := start
	end.Character++
	return protocol.Range{Start: start, End: end}
}

// wordBefore returns the identifier characters before col on line.
func wordBefore(content []byte, line, col int) string {
	lines := strings.Split(string(content), "\n")
	if line <= 0 || line > len(lines) {
		return ""
	}
	text := lines[line-1]
	if col > len(text) {
		col = len(text)
	}
	i := col
	for i > 0 && isWordByte(text[i-1]) {
		i--
	}
	return text[i:col]
}

func isWordByte(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// Completions offers keywords and declared names starting with prefix,
// keywords first.
func Completions(prefix string, declared []string) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	add := func(label string, kind protocol.CompletionItemKind) {
		if !strings.HasPrefix(label, prefix) || label == prefix {
			return
		}
		k := kind
		items = append(items, protocol.CompletionItem{Label: label, Kind: &k})
	}
	for _, kw := range grammar.Keywords() {
		add(kw, protocol.CompletionItemKindKeyword)
	}
	names := append([]string(nil), declared...)
	sort.Strings(names)
	for _, name := range names {
		add(name, protocol.CompletionItemKindFunction)
	}
	return items
}
