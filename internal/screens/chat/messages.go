package chat

import "time"

// replyMsg carries the tutor reply for the in-flight turn. The gateway
// never fails, so there is no error variant.
type replyMsg struct {
	Text string
}

// tickMsg drives the typing indicator animation.
type tickMsg time.Time
