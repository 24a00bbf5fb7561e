package logging

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		log      func(l *ConsoleLogger)
		expected string
	}{
		{
			name:     "verbose when enabled",
			verbose:  true,
			log:      func(l *ConsoleLogger) { l.Verbose("test message: %s", "value") },
			expected: "[VERBOSE] test message: value\n",
		},
		{
			name:     "verbose when disabled",
			log:      func(l *ConsoleLogger) { l.Verbose("test message: %s", "value") },
			expected: "",
		},
		{
			name:     "info",
			log:      func(l *ConsoleLogger) { l.Info("info message: %s", "value") },
			expected: "info message: value\n",
		},
		{
			name:     "error",
			log:      func(l *ConsoleLogger) { l.Error("error message: %d", 7) },
			expected: "[ERROR] error message: 7\n",
		},
		{
			name:     "no args keeps percent signs",
			log:      func(l *ConsoleLogger) { l.Info("100% done") },
			expected: "100% done\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewConsoleLoggerTo(&buf, tt.verbose))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestConsoleLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(&buf, true)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Info("line %d", i)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Verbose("x")
	l.Info("x")
	l.Error("x")
}
