package tui

import (
	"bytes"
	"net"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/stretchr/testify/require"

	"github.com/Emilinya/bounce/internal/collision"
	"github.com/Emilinya/bounce/internal/core"
)

// fakeSession implements only what loggingMiddleware reads.
type fakeSession struct {
	ssh.Session
}

func (fakeSession) User() string { return "tester" }

func (fakeSession) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 2222}
}

func TestLoggingMiddlewareReportsServerTotal(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	checker := collision.NewChecker(collision.WithLogger(log.New(&bytes.Buffer{})))
	s := &SSHServer{checker: checker, logger: logger}

	handler := s.loggingMiddleware(func(ssh.Session) {
		checker.Rect(core.Vec2{}, core.RectFromEdges(0, 0, 1, 1), core.RectFromEdges(0.5, 0.5, 1.5, 1.5))
	})
	handler(fakeSession{})

	out := buf.String()
	require.Contains(t, out, "session ended")
	require.Contains(t, out, "total_anomalies=1")
	require.NotContains(t, out, " anomalies=")
}
