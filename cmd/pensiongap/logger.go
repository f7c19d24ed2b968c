package main

import (
	"io"
	"log"

	"github.com/rpgo/pension-gap/internal/calculation"
)

// stdLogger implements calculation.Logger on top of the standard logger.
type stdLogger struct {
	l     *log.Logger
	debug bool
}

func newStdLogger(w io.Writer, debug bool) calculation.Logger {
	return &stdLogger{l: log.New(w, "pensiongap ", log.LstdFlags), debug: debug}
}

func (s *stdLogger) Debugf(format string, args ...any) {
	if s.debug {
		s.l.Printf("DEBUG "+format, args...)
	}
}
func (s *stdLogger) Infof(format string, args ...any)  { s.l.Printf("INFO "+format, args...) }
func (s *stdLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s *stdLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }
