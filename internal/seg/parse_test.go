package seg

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestParseSchema(t *testing.T) {
	s, err := ParseSchema("s\n\nt\nsum\n")
	if err != nil {
		t.Fatalf("ParseSchema failed: %v", err)
	}
	want := []string{"s", "t", "sum"}
	got := s.Fields()
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParseSchemaFieldOrderIsFree(t *testing.T) {
	if _, err := ParseSchema("sum\nt\nlazy\ns"); err != nil {
		t.Fatalf("expected schema with s and t in any order to pass, got %v", err)
	}
}

func TestParseSchemaMissingField(t *testing.T) {
	for _, text := range []string{"", "s", "t", "S\nT", "s \nt", "start\nend"} {
		_, err := ParseSchema(text)
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("ParseSchema(%q): expected ErrMissingField, got %v", text, err)
		}
		if KindOf(err) != SchemaError {
			t.Errorf("ParseSchema(%q): expected SchemaError kind, got %v", text, KindOf(err))
		}
	}
}

func TestParseRecords(t *testing.T) {
	schema, _ := ParseSchema("s\nt\nsum")
	recs, err := ParseRecords(schema, "0 3 10\n\n0  1 3\r\n2 3 7")
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[1].S != 0 || recs[1].T != 1 {
		t.Errorf("expected [0,1] for line with double space, got [%d,%d]", recs[1].S, recs[1].T)
	}
	if v, _ := recs[1].Get("sum"); v != "3" {
		t.Errorf("expected sum=3, got %q", v)
	}
	if recs[2].Line != 4 {
		t.Errorf("expected source line 4, got %d", recs[2].Line)
	}
}

func TestParseRecordsErrors(t *testing.T) {
	schema, _ := ParseSchema("s\nt\nsum")
	cases := []struct {
		name string
		data string
		kind Kind
		want error
		line int
	}{
		{"too many tokens", "0 3 10\n0 1 3 9", TokenCountError, ErrTokenCount, 2},
		{"too few tokens", "0 3", TokenCountError, ErrTokenCount, 1},
		{"non-integer s", "abc 3 1", TypeError, ErrNotInteger, 1},
		{"non-integer t", "0 1.5 1", TypeError, ErrNotInteger, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs, err := ParseRecords(schema, tc.data)
			if recs != nil {
				t.Errorf("expected no records on error, got %d", len(recs))
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Kind != tc.kind {
				t.Errorf("expected kind %v, got %v", tc.kind, pe.Kind)
			}
			if pe.Line != tc.line {
				t.Errorf("expected line %d, got %d", tc.line, pe.Line)
			}
		})
	}
}

func TestParseRecordsDuplicateNames(t *testing.T) {
	schema, _ := ParseSchema("s\nt\ntag\ntag")
	recs, err := ParseRecords(schema, "0 1 a b")
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}
	if len(recs[0].Fields) != 3 {
		t.Fatalf("expected 3 distinct fields, got %v", recs[0].Fields)
	}
	if v, _ := recs[0].Get("tag"); v != "b" {
		t.Errorf("expected last value to win, got %q", v)
	}
}

func TestValidateSpans(t *testing.T) {
	schema, _ := ParseSchema("s\nt")
	recs, err := ParseRecords(schema, "0 3\n5 4")
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}
	err = ValidateSpans(recs)
	if !errors.Is(err, ErrInvalidSpan) {
		t.Fatalf("expected ErrInvalidSpan, got %v", err)
	}
	if KindOf(err) != SpanError {
		t.Errorf("expected SpanError kind, got %v", KindOf(err))
	}
}

func TestParseNames(t *testing.T) {
	got := ParseNames("sum\n\nlazy\n")
	if len(got) != 2 || got[0] != "sum" || got[1] != "lazy" {
		t.Errorf("unexpected names: %v", got)
	}
	if got := ParseNames(""); len(got) != 0 {
		t.Errorf("expected empty selection, got %v", got)
	}
}

func TestValidateSpansAtIntLimits(t *testing.T) {
	schema, _ := ParseSchema("s\nt")
	cases := []struct {
		data string
		span float64
	}{
		{"0 " + strconv.Itoa(math.MaxInt), float64(math.MaxInt) + 1},
		{strconv.Itoa(math.MinInt) + " " + strconv.Itoa(math.MaxInt), 2 * float64(math.MaxInt)},
		{"5 5", 1},
	}
	for _, tc := range cases {
		recs, err := ParseRecords(schema, tc.data)
		if err != nil {
			t.Fatalf("ParseRecords(%q) failed: %v", tc.data, err)
		}
		if err := ValidateSpans(recs); err != nil {
			t.Errorf("ValidateSpans(%q): expected no error, got %v", tc.data, err)
		}
		if got := recs[0].Span(); got != tc.span {
			t.Errorf("Span(%q): expected %v, got %v", tc.data, tc.span, got)
		}
	}
}

func TestLayoutAtIntLimits(t *testing.T) {
	schema, _ := ParseSchema("s\nt")
	recs, err := ParseRecords(schema, strconv.Itoa(math.MinInt)+" "+strconv.Itoa(math.MaxInt)+"\n0 0")
	if err != nil {
		t.Fatalf("ParseRecords failed: %v", err)
	}
	pl := Layout(recs, DefaultLayout, 0)
	if pl[0].Level != 1 {
		t.Errorf("expected the full range at level 1, got %d", pl[0].Level)
	}
	if pl[1].Level != 65 {
		t.Errorf("expected [0,0] at level 65, got %d", pl[1].Level)
	}
}
