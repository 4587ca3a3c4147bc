package runner

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"
)

type inputResult struct {
	text string
	err  error
}

// lineSource reads lines in a background goroutine so callers can abandon a
// read when their context is cancelled.
type lineSource struct {
	reader    *bufio.Reader
	inputChan chan inputResult
	startOnce sync.Once
}

func newLineSource(r io.Reader) *lineSource {
	return &lineSource{reader: bufio.NewReader(r)}
}

func (s *lineSource) initPump() {
	s.startOnce.Do(func() {
		s.inputChan = make(chan inputResult)
		go s.pump()
	})
}

func (s *lineSource) pump() {
	for {
		text, err := s.reader.ReadString('\n')

		// A final line without newline still counts.
		if text != "" {
			s.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(s.inputChan)
				return
			}
			s.inputChan <- inputResult{err: err}
			// Backoff for persistent read failures.
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// next blocks until a line, the end of input or ctx cancellation.
// A closed source yields io.EOF.
func (s *lineSource) next(ctx context.Context) (string, error) {
	s.initPump()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-s.inputChan:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return res.text, nil
	}
}
