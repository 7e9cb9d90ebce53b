package scene

import (
	"fmt"
	"log"

	"sgthelper/internal/config"
	"sgthelper/internal/seg"
)

// State is a step of one render attempt.
type State int

const (
	Idle State = iota
	ParsingSchema
	ParsingRecords
	ComputingLayout
	Drawing
)

func (s State) String() string {
	switch s {
	case ParsingSchema:
		return "parsing schema"
	case ParsingRecords:
		return "parsing records"
	case ComputingLayout:
		return "computing layout"
	case Drawing:
		return "drawing"
	default:
		return "idle"
	}
}

// Input is the text of the three editors.
type Input struct {
	Data    string
	Schema  string
	Display string
}

// Session runs renders and keeps what the last one produced: the canvas batch,
// the record set of the last successful render and the render log.
type Session struct {
	cfg     config.Config
	canvas  Canvas
	records []seg.Record
	display []string
	log     []string
	trace   []State
}

func NewSession(cfg config.Config) *Session {
	return &Session{cfg: cfg}
}

func (s *Session) Canvas() *Canvas { return &s.canvas }

// Records is the record set of the last successful render.
func (s *Session) Records() []seg.Record { return s.records }

// Display is the display selection of the last render attempt.
func (s *Session) Display() []string { return s.display }

// Log is the message list of the last render attempt.
func (s *Session) Log() []string { return s.log }

// Trace is the sequence of states the last attempt went through.
func (s *Session) Trace() []State { return s.trace }

func (s *Session) Config() config.Config { return s.cfg }

// Render parses in and draws it. The canvas and log are cleared before
// anything is parsed, so a failed attempt leaves an empty canvas; the record
// set is only replaced when every line parsed.
func (s *Session) Render(in Input) error {
	s.canvas.Clear()
	s.log = nil
	s.trace = []State{Idle}
	defer s.enter(Idle)

	s.display = seg.ParseNames(in.Display)

	s.enter(ParsingSchema)
	schema, err := seg.ParseSchema(in.Schema)
	if err != nil {
		return s.fail(err)
	}

	s.enter(ParsingRecords)
	recs, err := seg.ParseRecords(schema, in.Data)
	if err != nil {
		return s.fail(err)
	}
	if err := seg.ValidateSpans(recs); err != nil {
		return s.fail(err)
	}

	s.enter(ComputingLayout)
	placements := seg.Layout(recs, s.cfg.LayoutParams(), len(s.display))

	s.enter(Drawing)
	batch := Draw(placements, s.display, Style{
		Inset:        s.cfg.Render.Inset,
		TickLen:      s.cfg.Render.TickLen,
		LabelSpacing: s.cfg.Render.LabelSpacing,
	})
	s.canvas.Replace(batch)
	s.records = recs

	if len(recs) == 0 {
		s.info("nothing to render")
	} else {
		s.info(fmt.Sprintf("rendered %d nodes across %d levels", len(recs), seg.Levels(placements)))
	}
	return nil
}

func (s *Session) enter(st State) {
	s.trace = append(s.trace, st)
}

func (s *Session) fail(err error) error {
	s.log = append(s.log, "[error] "+err.Error())
	log.Printf("render: %v", err)
	return err
}

func (s *Session) info(msg string) {
	s.log = append(s.log, "[info] "+msg)
}
