package thunk

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	codeLex     = "E0001"
	codeParse   = "E0002"
	codeRuntime = "E0003"
)

type painter bool

func (p painter) paint(code, s string) string {
	if !p {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func (p painter) red(s string) string  { return p.paint("31", s) }
func (p painter) blue(s string) string { return p.paint("94", s) }
func (p painter) bold(s string) string { return p.paint("1", s) }

// Report writes a human readable diagnostic for err to w. Lex, parse and
// runtime errors are shown against src with the offending span underlined;
// any other error is written as a single line. name labels the source, for
// example a file name.
func Report(w io.Writer, name, src string, err error, color bool) {
	p := painter(color)

	var lexErr *LexError
	var parseErr *ParseError
	var runtimeErr *RuntimeError
	switch {
	case errors.As(err, &lexErr):
		header(w, p, codeLex, "Failed to lex.")
		snippet(w, p, name, src, lexErr.Span,
			fmt.Sprintf("Expected one of: %s. Found: %s.", strings.Join(lexErr.Expected, ", "), lexErr.FoundText()))
	case errors.As(err, &parseErr):
		reportParse(w, p, name, src, parseErr)
	case errors.As(err, &runtimeErr):
		header(w, p, codeRuntime, "Failed to evaluate.")
		snippet(w, p, name, src, runtimeErr.Span, runtimeErr.Error())
	default:
		fmt.Fprintf(w, "%s: %v\n", p.red("error"), err)
	}
}

func reportParse(w io.Writer, p painter, name, src string, e *ParseError) {
	expected := fmt.Sprintf("Expected one of: %s. Found: %s.", strings.Join(e.Expected, ", "), e.FoundText())
	switch e.Kind {
	case UnclosedDelimiter:
		header(w, p, codeParse, fmt.Sprintf("Unclosed delimiter '%s'.", e.Delimiter))
		snippet(w, p, name, src, e.Span, expected)
		snippet(w, p, name, src, e.DelimiterSpan, fmt.Sprintf("'%s' opened here", e.Delimiter))
	case CustomMessage:
		header(w, p, codeParse, e.Message)
		label := e.Label
		if label == "" {
			label = e.Message
		}
		snippet(w, p, name, src, e.Span, label)
	default:
		header(w, p, codeParse, "Failed to parse.")
		snippet(w, p, name, src, e.Span, expected)
	}
}

func header(w io.Writer, p painter, code, msg string) {
	fmt.Fprintf(w, "%s %s\n", p.red(p.bold("error["+code+"]:")), p.bold(msg))
}

// snippet prints the source line containing span.Start with the span
// underlined and label beside it.
func snippet(w io.Writer, p painter, name, src string, span Span, label string) {
	loc := locate(src, span.Start)

	width := 1
	if end := span.End; end > loc.offset {
		if end > loc.lineEnd {
			end = loc.lineEnd
		}
		if n := utf8.RuneCountInString(src[loc.offset:end]); n > 0 {
			width = n
		}
	}

	if name == "" {
		name = "<input>"
	}
	num := fmt.Sprint(loc.line)
	pad := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, "%s%s %s:%d:%d\n", pad, p.blue("-->"), name, loc.line, loc.col)
	fmt.Fprintf(w, "%s %s\n", pad, p.blue("|"))
	fmt.Fprintf(w, "%s %s %s\n", p.blue(num), p.blue("|"), strings.TrimRight(src[loc.lineStart:loc.lineEnd], "\r"))
	fmt.Fprintf(w, "%s %s %s%s %s\n", pad, p.blue("|"),
		strings.Repeat(" ", loc.col-1), p.red(strings.Repeat("^", width)), label)
}

type location struct {
	offset    int
	line, col int
	lineStart int
	lineEnd   int
}

// locate finds the 1-based line and column of offset. Columns count runes.
// Offsets outside src are clamped.
func locate(src string, offset int) location {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += start
	}
	return location{
		offset:    offset,
		line:      strings.Count(src[:start], "\n") + 1,
		col:       utf8.RuneCountInString(src[start:offset]) + 1,
		lineStart: start,
		lineEnd:   end,
	}
}
