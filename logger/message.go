package logger

import (
	"fmt"
	"strconv"
	"strings"
)

// formatMessage substitutes indexed placeholders such as {0} or {1,-8:x}
// with fmt's default rendering of the matching argument. Alignment and
// format suffixes are accepted and ignored. "{{" and "}}" produce literal
// braces. A placeholder without a matching argument, or one that does not
// parse, is copied through unchanged.
func formatMessage(template string, args []any) string {
	if len(args) == 0 && !strings.ContainsAny(template, "{}") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))

	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				b.WriteString(template[i:])
				return b.String()
			}
			spec := template[i+1 : i+1+end]
			if inner := strings.LastIndexByte(spec, '{'); inner >= 0 {
				// garbled prefix such as "{a{0}": keep it and retry at the inner brace
				b.WriteString(template[i : i+1+inner])
				i += 1 + inner
				continue
			}
			if arg, ok := lookup(spec, args); ok {
				b.WriteString(render(arg))
			} else {
				b.WriteString(template[i : i+end+2])
			}
			i += end + 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// lookup resolves "N", "N,align" or "N:format" to args[N]
func lookup(spec string, args []any) (any, bool) {
	index := spec
	if cut := strings.IndexAny(spec, ",:"); cut >= 0 {
		index = spec[:cut]
	}
	index = strings.TrimSpace(index)
	if index == "" || strings.ContainsAny(index, "+-") {
		return nil, false
	}
	n, err := strconv.Atoi(index)
	if err != nil || n >= len(args) {
		return nil, false
	}
	return args[n], true
}

func render(arg any) string {
	if s, ok := arg.(string); ok {
		return s
	}
	return fmt.Sprint(arg)
}
