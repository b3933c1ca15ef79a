package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const maxLineSize = 64 * 1024 * 1024

// FileReader returns the events of a JSON-lines file, one per line,
// honouring the skip and max_events settings.
type FileReader struct {
	Scanner   *bufio.Scanner
	EvtCount  int
	Line      int
	Skip      int
	MaxEvents int
}

func NewFileReader(r io.Reader, skip int, maxEvents int) *FileReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &FileReader{Scanner: scanner, EvtCount: -1, Skip: skip, MaxEvents: maxEvents}
}

func (f *FileReader) getNextEvent() ([]byte, int, error) {
	for f.Scanner.Scan() {
		f.Line++
		line := bytes.TrimSpace(f.Scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		f.EvtCount++
		if f.EvtCount >= f.MaxEvents {
			if VerbosityLevel > 0 {
				logger.Info("Max events reached", "fileReader")
			}
			return nil, f.Line, io.EOF
		}
		if f.EvtCount < f.Skip {
			if VerbosityLevel > 1 {
				message := fmt.Sprintf("Skipping event %d at line %d", f.EvtCount, f.Line)
				logger.Info(message, "fileReader")
			}
			continue
		}
		if VerbosityLevel > 1 {
			message := fmt.Sprintf("Reading event %d at line %d", f.EvtCount, f.Line)
			logger.Info(message, "fileReader")
		}
		// The scanner reuses its buffer
		data := make([]byte, len(line))
		copy(data, line)
		return data, f.Line, nil
	}
	if err := f.Scanner.Err(); err != nil {
		return nil, f.Line, fmt.Errorf("error reading line %d: %w", f.Line+1, err)
	}
	return nil, f.Line, io.EOF
}
