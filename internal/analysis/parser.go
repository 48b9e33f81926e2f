package analysis

import (
	"strings"
	"time"
)

// state tracks which response section subsequent lines belong to.
type state int

const (
	stateNone state = iota
	stateMain
	stateSecondary
)

const (
	mainMarker      = "MAIN:"
	secondaryMarker = "SECONDARY:"
)

// fillerPrefixes start lines that carry no product data: separators and
// conversational preambles from the annotation model.
var fillerPrefixes = []string{"---", "Certainly", "Sure"}

// Parse runs the sectioned-response state machine over a raw text blob and
// returns the structured result for the originating filename.
//
// The machine starts in no section; a MAIN: or SECONDARY: marker line
// switches section without emitting. In MAIN, a "name - brand" line emits the
// principal mention, later lines overwriting earlier ones. In SECONDARY, only
// numbered lines ("1."-"5.") emit, appended in encounter order. Sentinel and
// unrecognized lines are dropped. If no principal was emitted, the first
// secondary mention is promoted.
func Parse(filename, text string) Result {
	var p parser
	for _, line := range strings.Split(text, "\n") {
		p.consume(line)
	}
	return p.finalize(filename)
}

type parser struct {
	state     state
	principal *Mention
	secondary []Mention
}

// consume applies the transition rules for a single input line.
func (p *parser) consume(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" || isFiller(line) {
		return
	}

	switch {
	case strings.HasPrefix(line, mainMarker):
		p.state = stateMain
		return
	case strings.HasPrefix(line, secondaryMarker):
		p.state = stateSecondary
		return
	}

	// Numbered lines belong to the secondary list regardless of section;
	// outside SECONDARY they are dropped.
	if rest, numbered := stripOrdinal(line); numbered {
		if p.state == stateSecondary {
			if m, ok := newMention(rest, RoleSecondary); ok {
				p.secondary = append(p.secondary, m)
			}
		}
		return
	}

	if p.state == stateMain {
		if m, ok := newMention(line, RolePrincipal); ok {
			p.principal = &m
		}
	}
}

// finalize assembles the result, promoting the first secondary mention to
// principal when no MAIN line produced one.
func (p *parser) finalize(filename string) Result {
	mentions := make([]Mention, 0, len(p.secondary)+1)
	if p.principal != nil {
		mentions = append(mentions, *p.principal)
		mentions = append(mentions, p.secondary...)
	} else if len(p.secondary) > 0 {
		promoted := p.secondary[0]
		promoted.Role = RolePrincipal
		mentions = append(mentions, promoted)
		mentions = append(mentions, p.secondary[1:]...)
	}
	return Result{
		Filename:  filename,
		Mentions:  mentions,
		Timestamp: time.Now().UTC(),
	}
}

func isFiller(line string) bool {
	for _, prefix := range fillerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// stripOrdinal removes a "1."-"5." list prefix, reporting whether one was
// present.
func stripOrdinal(line string) (string, bool) {
	if len(line) < 2 || line[1] != '.' || line[0] < '1' || line[0] > '5' {
		return line, false
	}
	return strings.TrimSpace(line[2:]), true
}
