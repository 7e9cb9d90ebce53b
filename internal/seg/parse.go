package seg

import (
	"strconv"
	"strings"
)

// ParseSchema reads one field name per line. Empty lines are skipped; order and
// duplicates are kept. The schema must name both s and t.
func ParseSchema(text string) (Schema, error) {
	var fields []string
	for _, name := range splitLines(text) {
		if name == "" {
			continue
		}
		fields = append(fields, name)
	}
	s := Schema{fields: fields}
	if !s.Has(FieldS) || !s.Has(FieldT) {
		return Schema{}, &ParseError{Kind: SchemaError, Err: ErrMissingField}
	}
	return s, nil
}

// ParseNames reads a display selection: one name per line, empty lines skipped.
func ParseNames(text string) []string {
	var out []string
	for _, name := range splitLines(text) {
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// ParseRecords reads one record per non-empty line of text. Tokens are split
// on single spaces and empty tokens are dropped, so runs of spaces do not shift
// positions. The first error aborts the whole parse and no records are returned.
func ParseRecords(schema Schema, text string) ([]Record, error) {
	var out []Record
	for i, line := range splitLines(text) {
		if line == "" {
			continue
		}
		rec, err := parseLine(schema, line, i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseLine(schema Schema, line string, lineNo int) (Record, error) {
	rec := Record{Line: lineNo}
	index := 0
	for _, tok := range strings.Split(line, " ") {
		if tok == "" {
			continue
		}
		if index >= schema.Len() {
			return Record{}, &ParseError{Kind: TokenCountError, Line: lineNo, Token: tok, Err: ErrTokenCount}
		}
		name := schema.fields[index]
		switch name {
		case FieldS, FieldT:
			v, err := strconv.Atoi(tok)
			if err != nil {
				return Record{}, &ParseError{Kind: TypeError, Line: lineNo, Field: name, Token: tok, Err: ErrNotInteger}
			}
			if name == FieldS {
				rec.S = v
			} else {
				rec.T = v
			}
		}
		rec.set(name, tok)
		index++
	}
	if index != schema.Len() {
		return Record{}, &ParseError{Kind: TokenCountError, Line: lineNo, Err: ErrTokenCount}
	}
	return rec, nil
}

// ValidateSpans rejects records whose range is empty (t < s).
func ValidateSpans(recs []Record) error {
	for _, r := range recs {
		if r.T < r.S {
			return &ParseError{Kind: SpanError, Line: r.Line, Err: ErrInvalidSpan}
		}
	}
	return nil
}

// splitLines splits on \n and trims a trailing \r so CRLF input pastes cleanly.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
