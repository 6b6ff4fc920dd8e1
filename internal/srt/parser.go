package srt

import (
	"io"
	"iter"
	"strconv"
	"strings"
)

const (
	utf8BOM       = "\ufeff"
	timeDelimiter = "-->"
)

type state int

const (
	stateStart state = iota
	// a position line is buffered in Parser.pending
	statePos
	stateTimeRange
	stateText
	stateStop
)

// Parser reads subtitle items one at a time from a LineSource.
// A Parser is single use: once it returns an error or io.EOF every
// later call to Next returns io.EOF.
type Parser struct {
	src   LineSource
	state state

	pending     string
	pendingLine int

	// number of lines read so far
	line    int
	builder builder
}

func NewParser(src LineSource) *Parser {
	return &Parser{src: src}
}

// NewReaderParser parses lines read from r.
func NewReaderParser(r io.Reader) *Parser {
	return NewParser(NewLineReader(r))
}

// Next returns the next item, or io.EOF when input is exhausted. Other
// errors are *ParseError.
func (p *Parser) Next() (Item, error) {
	item, err := p.parseItem()
	if err != nil {
		p.state = stateStop
		return Item{}, err
	}
	return item, nil
}

// All iterates over the remaining items. Iteration ends after the first
// error, which is yielded with a zero Item.
func (p *Parser) All() iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		for {
			item, err := p.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Item{}, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

func (p *Parser) readLine() (string, bool, error) {
	line, ok, err := p.src.ReadLine()
	if err != nil {
		return "", false, &ParseError{Kind: ReadLine, Line: p.line + 1, Err: err}
	}
	if ok {
		p.line++
	}
	return line, ok, nil
}

func (p *Parser) setPending(line string) {
	p.pending = strings.TrimSpace(line)
	p.pendingLine = p.line
	p.state = statePos
}

func (p *Parser) take() (Item, error) {
	item, err := p.builder.take()
	if err != nil {
		return Item{}, &ParseError{Kind: CreateItem, Line: p.line, Err: err}
	}
	return item, nil
}

func (p *Parser) parseItem() (Item, error) {
	for {
		switch p.state {
		case stateStart:
			line, ok, err := p.readLine()
			if err != nil {
				return Item{}, err
			}
			if !ok {
				return Item{}, io.EOF
			}
			p.setPending(strings.TrimPrefix(line, utf8BOM))

		case statePos:
			// a new position line ends the item before it
			if p.builder.maybeReady() {
				return p.take()
			}
			pos, err := strconv.ParseUint(p.pending, 10, 64)
			if err != nil {
				return Item{}, &ParseError{
					Kind: BadPosition,
					Line: p.pendingLine,
					Err:  err,
				}
			}
			p.builder.setPos(pos)
			p.state = stateTimeRange

		case stateTimeRange:
			line, ok, err := p.readLine()
			if err != nil {
				return Item{}, err
			}
			if !ok {
				return Item{}, &ParseError{
					Kind: UnexpectedEnd,
					Line: p.line,
					Err:  io.ErrUnexpectedEOF,
				}
			}
			if err := p.parseTimeRange(line); err != nil {
				return Item{}, err
			}
			p.state = stateText

		case stateText:
			line, ok, err := p.readLine()
			if err != nil {
				return Item{}, err
			}
			if !ok {
				p.state = stateStop
				return p.take()
			}
			line = strings.TrimSpace(line)
			if line != "" {
				p.builder.appendText(line)
				continue
			}
			next, ok, err := p.readLine()
			if err != nil {
				return Item{}, err
			}
			if !ok {
				p.state = stateStop
				return p.take()
			}
			p.setPending(next)

		case stateStop:
			return Item{}, io.EOF
		}
	}
}

func (p *Parser) parseTimeRange(line string) error {
	parts := strings.Split(strings.TrimSpace(line), timeDelimiter)

	start, err := ParseTime(parts[0])
	if err != nil {
		return &ParseError{Kind: ParseStartTime, Line: p.line, Err: err}
	}
	p.builder.setStartTime(start)

	if len(parts) > 1 {
		end, err := ParseTime(parts[1])
		if err != nil {
			return &ParseError{Kind: ParseEndTime, Line: p.line, Err: err}
		}
		p.builder.setEndTime(end)
	}

	if len(parts) > 2 {
		return &ParseError{Kind: ExtraTimePart, Line: p.line, Part: parts[2]}
	}
	return nil
}
