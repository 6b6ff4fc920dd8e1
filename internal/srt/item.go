package srt

import (
	"errors"
	"fmt"
)

var (
	ErrMissingPosition  = errors.New("item position is missing")
	ErrMissingStartTime = errors.New("item start time is missing")
	ErrMissingEndTime   = errors.New("item end time is missing")
	ErrMissingText      = errors.New("item text is missing")
)

// Item is a single subtitle entry.
type Item struct {
	// sequence number as written in the input, not required to be contiguous
	Pos       uint64 `json:"pos"`
	StartTime Time   `json:"start_time"`
	EndTime   Time   `json:"end_time"`
	// caption lines joined with "\n"
	Text string `json:"text"`
}

func (i Item) String() string {
	return fmt.Sprintf("%d\n%s-->%s\n%s", i.Pos, i.StartTime, i.EndTime, i.Text)
}

// collects the fields of one in-flight item
type builder struct {
	pos       *uint64
	startTime *Time
	endTime   *Time
	text      *string
}

func (b *builder) setPos(pos uint64) {
	b.pos = &pos
}

func (b *builder) setStartTime(t Time) {
	b.startTime = &t
}

func (b *builder) setEndTime(t Time) {
	b.endTime = &t
}

func (b *builder) appendText(part string) {
	if b.text == nil {
		b.text = &part
		return
	}
	joined := *b.text + "\n" + part
	b.text = &joined
}

// reports whether an item is in flight
func (b *builder) maybeReady() bool {
	return b.pos != nil
}

// take moves the collected fields into an Item and resets the builder,
// whether or not every field was present.
func (b *builder) take() (Item, error) {
	pos, startTime, endTime, text := b.pos, b.startTime, b.endTime, b.text
	*b = builder{}

	switch {
	case pos == nil:
		return Item{}, ErrMissingPosition
	case startTime == nil:
		return Item{}, ErrMissingStartTime
	case endTime == nil:
		return Item{}, ErrMissingEndTime
	case text == nil:
		return Item{}, ErrMissingText
	}

	return Item{
		Pos:       *pos,
		StartTime: *startTime,
		EndTime:   *endTime,
		Text:      *text,
	}, nil
}
