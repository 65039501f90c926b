package ports

// RobotLink is one stateful connection to the hardware controller. At most
// one exchange may be outstanding at a time; callers serialize.
type RobotLink interface {
	SendAndAwait(message string) (string, error)
	Close() error
}
