package srt

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const underworld = `1
00:00:58,392 --> 00:01:02,563
The war had all but ground to a halt
in the blink of an eye.

2
00:01:04,565 --> 00:01:08,986
Lucian, the most feared and ruthless
leader ever to rule the Lycan clan...

3
00:01:09,070 --> 00:01:11,656
...had finally been killed.

652
01:53:02,325 --> 01:53:06,162
Soon, Marcus will take the throne.
`

var underworldItems = []Item{
	{
		Pos:       1,
		StartTime: Time{Seconds: 58, Milliseconds: 392},
		EndTime:   Time{Minutes: 1, Seconds: 2, Milliseconds: 563},
		Text:      "The war had all but ground to a halt\nin the blink of an eye.",
	},
	{
		Pos:       2,
		StartTime: Time{Minutes: 1, Seconds: 4, Milliseconds: 565},
		EndTime:   Time{Minutes: 1, Seconds: 8, Milliseconds: 986},
		Text:      "Lucian, the most feared and ruthless\nleader ever to rule the Lycan clan...",
	},
	{
		Pos:       3,
		StartTime: Time{Minutes: 1, Seconds: 9, Milliseconds: 70},
		EndTime:   Time{Minutes: 1, Seconds: 11, Milliseconds: 656},
		Text:      "...had finally been killed.",
	},
	{
		Pos:       652,
		StartTime: Time{Hours: 1, Minutes: 53, Seconds: 2, Milliseconds: 325},
		EndTime:   Time{Hours: 1, Minutes: 53, Seconds: 6, Milliseconds: 162},
		Text:      "Soon, Marcus will take the throne.",
	},
}

func parseAll(t *testing.T, data string) []Item {
	t.Helper()
	parser := NewReaderParser(strings.NewReader(data))
	var items []Item
	for {
		item, err := parser.Next()
		if err == io.EOF {
			return items
		}
		require.NoError(t, err)
		items = append(items, item)
	}
}

func firstError(t *testing.T, data string) *ParseError {
	t.Helper()
	parser := NewReaderParser(strings.NewReader(data))
	for {
		_, err := parser.Next()
		require.NotEqual(t, io.EOF, err, "expected a parse error")
		if err != nil {
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			return parseErr
		}
	}
}

func TestParser(t *testing.T) {
	assert.Equal(t, underworldItems, parseAll(t, underworld))
}

func TestParserStripsBOM(t *testing.T) {
	assert.Equal(t, parseAll(t, underworld), parseAll(t, "\ufeff"+underworld))
}

func TestParserCRLF(t *testing.T) {
	crlf := strings.ReplaceAll(underworld, "\n", "\r\n")
	assert.Equal(t, underworldItems, parseAll(t, crlf))
}

func TestParserEmptyInput(t *testing.T) {
	assert.Empty(t, parseAll(t, ""))
}

func TestParserSingleItemWithoutTrailingNewline(t *testing.T) {
	items := parseAll(t, "1\n00:00:01,100 --> 00:00:02,120\nHello!")
	assert.Equal(t, []Item{{
		Pos:       1,
		StartTime: Time{Seconds: 1, Milliseconds: 100},
		EndTime:   Time{Seconds: 2, Milliseconds: 120},
		Text:      "Hello!",
	}}, items)
}

func TestParserTrailingBlankLine(t *testing.T) {
	items := parseAll(t, "1\n00:00:01,100 --> 00:00:02,120\nHello!\n\n")
	require.Len(t, items, 1)
	assert.Equal(t, "Hello!", items[0].Text)
}

func TestParserTrimsLines(t *testing.T) {
	items := parseAll(t, "  4 \n\t00:00:01,000-->00:00:02,000  \n  one  \n two\n")
	assert.Equal(t, []Item{{
		Pos:       4,
		StartTime: Time{Seconds: 1},
		EndTime:   Time{Seconds: 2},
		Text:      "one\ntwo",
	}}, items)
}

func TestParserAcceptsAnyPositionOrder(t *testing.T) {
	data := "10\n00:00:01,000 --> 00:00:02,000\nA\n\n" +
		"3\n00:00:03,000 --> 00:00:04,000\nB\n\n" +
		"3\n00:00:05,000 --> 00:00:06,000\nC\n"
	items := parseAll(t, data)
	require.Len(t, items, 3)
	assert.EqualValues(t, 10, items[0].Pos)
	assert.EqualValues(t, 3, items[1].Pos)
	assert.EqualValues(t, 3, items[2].Pos)
}

func TestParserMultiLineCaptions(t *testing.T) {
	lines := []string{"one", "two", "three", "four"}
	data := "1\n00:00:01,000 --> 00:00:02,000\n" + strings.Join(lines, "\n") + "\n"
	items := parseAll(t, data)
	require.Len(t, items, 1)
	assert.Equal(t, strings.Join(lines, "\n"), items[0].Text)
}

func TestParserRoundTrip(t *testing.T) {
	for _, item := range underworldItems {
		items := parseAll(t, item.String()+"\n\n")
		assert.Equal(t, []Item{item}, items)
	}

	rendered := make([]string, len(underworldItems))
	for i, item := range underworldItems {
		rendered[i] = item.String()
	}
	assert.Equal(t, underworldItems, parseAll(t, strings.Join(rendered, "\n\n")+"\n"))
}

func TestParserBadPosition(t *testing.T) {
	err := firstError(t, "bad position")
	assert.Equal(t, BadPosition, err.Kind)
	assert.Equal(t, 1, err.Line)
	assert.Equal(t, `bad subtitle position: strconv.ParseUint: parsing "bad position": invalid syntax`, err.Error())

	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}

func TestParserBadStartTime(t *testing.T) {
	err := firstError(t, "1\nbad time")
	assert.Equal(t, ParseStartTime, err.Kind)
	assert.Equal(t, 2, err.Line)
	assert.Equal(
		t,
		`failed to parse start time: could not parse hours: strconv.ParseUint: parsing "bad time": invalid syntax`,
		err.Error(),
	)
}

func TestParserBadEndTime(t *testing.T) {
	err := firstError(t, "1\n00:00:58,392 --> bad end time")
	assert.Equal(t, ParseEndTime, err.Kind)
	assert.Equal(
		t,
		`failed to parse end time: could not parse hours: strconv.ParseUint: parsing "bad end time": invalid syntax`,
		err.Error(),
	)
}

func TestParserBadTimeFormat(t *testing.T) {
	err := firstError(t, "1\n00:00:00:00")
	assert.Equal(t, "failed to parse start time: unexpected time part: '00'", err.Error())

	var partErr *UnexpectedTimePartError
	assert.ErrorAs(t, err, &partErr)
}

func TestParserExtraTimePart(t *testing.T) {
	err := firstError(t, "1\n00:00:58,392 --> 00:01:02,563 --> 00:01:02,563")
	assert.Equal(t, ExtraTimePart, err.Kind)
	assert.Equal(t, " 00:01:02,563", err.Part)
	assert.Equal(
		t,
		"an extra time part found: ' 00:01:02,563'; there should be start and end only",
		err.Error(),
	)
}

func TestParserUnexpectedEnd(t *testing.T) {
	err := firstError(t, "1")
	assert.Equal(t, UnexpectedEnd, err.Kind)
	assert.Equal(t, "unexpected end of input", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParserMissingEndTime(t *testing.T) {
	err := firstError(t, "1\n00:00:58,392")
	assert.Equal(t, CreateItem, err.Kind)
	assert.Equal(t, "item end time is missing", err.Error())
	assert.ErrorIs(t, err, ErrMissingEndTime)
}

func TestParserMissingText(t *testing.T) {
	err := firstError(t, "1\n00:00:58,392 --> 00:01:02,563")
	assert.Equal(t, "item text is missing", err.Error())
	assert.ErrorIs(t, err, ErrMissingText)

	err = firstError(t, "1\n00:00:58,392 --> 00:01:02,563\n\n2\n00:00:03,000 --> 00:00:04,000\nB\n")
	assert.ErrorIs(t, err, ErrMissingText)
	assert.Equal(t, 4, err.Line)
}

func TestParserErrorLineNumbers(t *testing.T) {
	data := "1\n00:00:01,000 --> 00:00:02,000\nA\n\nx\n"
	err := firstError(t, data)
	assert.Equal(t, BadPosition, err.Kind)
	assert.Equal(t, 5, err.Line)
}

func TestParserConsecutiveBlankLines(t *testing.T) {
	// only one blank line separates items; a second one is read as the
	// next position
	parser := NewReaderParser(strings.NewReader(
		"1\n00:00:01,000 --> 00:00:02,000\nA\n\n\n2\n00:00:03,000 --> 00:00:04,000\nB\n",
	))

	item, err := parser.Next()
	require.NoError(t, err)
	assert.Equal(t, "A", item.Text)

	_, err = parser.Next()
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, BadPosition, parseErr.Kind)
	assert.Equal(t, 5, parseErr.Line)
}

func TestParserSettlesAfterError(t *testing.T) {
	parser := NewReaderParser(strings.NewReader("bad\n00:00:01,000 --> 00:00:02,000\nA\n"))

	_, err := parser.Next()
	require.Error(t, err)
	assert.NotEqual(t, io.EOF, err)

	_, err = parser.Next()
	assert.Equal(t, io.EOF, err)
	_, err = parser.Next()
	assert.Equal(t, io.EOF, err)
}

func TestParserEOFIsSticky(t *testing.T) {
	parser := NewReaderParser(strings.NewReader("1\n00:00:01,000 --> 00:00:02,000\nA\n"))

	_, err := parser.Next()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = parser.Next()
		assert.Equal(t, io.EOF, err)
	}
}

func TestParserLines(t *testing.T) {
	parser := NewParser(Lines([]string{
		"\ufeff1",
		"00:00:01,000 --> 00:00:02,000",
		"Hello",
		"",
		"2",
		"00:00:03,000 --> 00:00:04,000",
		"World",
	}))

	var texts []string
	for item, err := range parser.All() {
		require.NoError(t, err)
		texts = append(texts, item.Text)
	}
	assert.Equal(t, []string{"Hello", "World"}, texts)
}

func TestParserAllStopsAfterError(t *testing.T) {
	parser := NewReaderParser(strings.NewReader(
		"1\n00:00:01,000 --> 00:00:02,000\nA\n\nbad\n00:00:03,000 --> 00:00:04,000\nB\n",
	))

	var items []Item
	var errs []error
	for item, err := range parser.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		items = append(items, item)
	}
	assert.Len(t, items, 1)
	require.Len(t, errs, 1)
	var parseErr *ParseError
	assert.ErrorAs(t, errs[0], &parseErr)
}

func TestParserAllEarlyBreak(t *testing.T) {
	parser := NewReaderParser(strings.NewReader(underworld))

	for item, err := range parser.All() {
		require.NoError(t, err)
		assert.EqualValues(t, 1, item.Pos)
		break
	}

	item, err := parser.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 2, item.Pos)
}

type failingSource struct {
	lines []string
	err   error
}

func (s *failingSource) ReadLine() (string, bool, error) {
	if len(s.lines) == 0 {
		return "", false, s.err
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, true, nil
}

func TestParserReadLineError(t *testing.T) {
	ioErr := errors.New("disk on fire")
	parser := NewParser(&failingSource{
		lines: []string{"1", "00:00:01,000 --> 00:00:02,000"},
		err:   ioErr,
	})

	_, err := parser.Next()
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ReadLine, parseErr.Kind)
	assert.Equal(t, 3, parseErr.Line)
	assert.ErrorIs(t, err, ioErr)
	assert.Equal(t, "could not read a line from input: disk on fire", err.Error())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "extra time part", ExtraTimePart.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
}
