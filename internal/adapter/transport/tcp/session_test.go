package tcp

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"
)

// startEchoServer accepts one connection and echoes each read back with an
// "ack:" prefix. Returns host and port.
func startEchoServer(t *testing.T) (string, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 1024)
		for {
			n, err := conn.Read(buf)
			if err != nil {
				return
			}
			conn.Write([]byte("ack:" + string(buf[:n])))
		}
	}()

	host, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	port, _ := strconv.Atoi(portStr)
	return host, port
}

func TestConnect_DialFailureIsUnavailable(t *testing.T) {
	// Port 1 is virtually never listening on loopback.
	_, err := Connect("127.0.0.1", 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestSendAndAwait_RoundTrip(t *testing.T) {
	host, port := startEchoServer(t)
	session, err := Connect(host, port)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer session.Close()

	reply, err := session.SendAndAwait("10|0|50")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != "ack:10|0|50" {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestSendAndAwait_TimeoutLeavesSessionUsable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	// Reply to the second message only; the first one times out.
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 1024)
		for i := 0; ; i++ {
			n, err := conn.Read(buf)
			if err != nil {
				return
			}
			if i > 0 {
				conn.Write([]byte("late:" + string(buf[:n])))
			}
		}
	}()

	host, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(portStr)
	session, err := Connect(host, port)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer session.Close()
	session.ReplyTimeout = 50 * time.Millisecond

	_, err = session.SendAndAwait("21|1")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}

	session.ReplyTimeout = time.Second
	reply, err := session.SendAndAwait("20|1")
	if err != nil {
		t.Fatalf("session must stay usable after a timeout: %v", err)
	}
	if !strings.HasPrefix(reply, "late:") {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestClose_IsIdempotent(t *testing.T) {
	host, port := startEchoServer(t)
	session, err := Connect(host, port)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := session.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := session.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	if _, err := session.SendAndAwait("99|0"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed after close, got %v", err)
	}
}
