package tcp

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// DefaultReplyTimeout bounds the wait for a controller reply.
const DefaultReplyTimeout = 10 * time.Second

const replyBufferSize = 1024

var (
	// ErrUnavailable means the controller endpoint could not be reached.
	// Callers treat this as non-fatal and downgrade to hardware-disabled
	// mode.
	ErrUnavailable = errors.New("controller unavailable")
	// ErrTimeout means no reply arrived within the reply timeout. The
	// session stays usable for subsequent exchanges.
	ErrTimeout = errors.New("controller reply timeout")
	// ErrCommunication means the connection faulted mid-exchange.
	ErrCommunication = errors.New("controller communication error")
	ErrClosed        = errors.New("session closed")
)

// Session owns one persistent connection to the hardware controller and
// carries exactly one send-and-await exchange at a time; callers serialize.
type Session struct {
	conn net.Conn

	// ReplyTimeout may be shortened in tests; production uses the default.
	ReplyTimeout time.Duration
}

// Connect dials the controller endpoint. A dial failure wraps
// ErrUnavailable so callers can degrade instead of aborting.
func Connect(host string, port int) (*Session, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrUnavailable, addr, err)
	}
	hlog.Infof("controller connected at %s", addr)
	return &Session{conn: conn, ReplyTimeout: DefaultReplyTimeout}, nil
}

// SendAndAwait writes the full message and blocks for a single reply.
// There is no automatic retry; the caller decides whether a failed round
// trip is fatal.
func (s *Session) SendAndAwait(message string) (string, error) {
	if s == nil || s.conn == nil {
		return "", ErrClosed
	}

	if _, err := s.conn.Write([]byte(message)); err != nil {
		return "", fmt.Errorf("%w: write: %v", ErrCommunication, err)
	}

	if err := s.conn.SetReadDeadline(time.Now().Add(s.ReplyTimeout)); err != nil {
		return "", fmt.Errorf("%w: set deadline: %v", ErrCommunication, err)
	}

	buf := make([]byte, replyBufferSize)
	n, err := s.conn.Read(buf)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "", fmt.Errorf("%w after %s", ErrTimeout, s.ReplyTimeout)
		}
		return "", fmt.Errorf("%w: read: %v", ErrCommunication, err)
	}
	return string(buf[:n]), nil
}

// Close tears down the connection. Idempotent; safe on a never-connected
// or already-closed session.
func (s *Session) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	if err != nil {
		hlog.Warnf("closing controller connection: %v", err)
	}
	return nil
}
