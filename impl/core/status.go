package core

import (
	"fmt"
	"strings"
	"time"
)

// StatusReport is the text the admin bot answers /status with.
func (c *Core) StatusReport() string {
	var b strings.Builder
	b.WriteString("*CorpSite status*\n")
	fmt.Fprintf(&b, "uptime: %s\n", c.now().Sub(c.started).Truncate(time.Second))

	if c.engine != nil {
		stats := c.engine.Stats()
		fmt.Fprintf(&b, "active sessions: %d\n", stats.ActiveSessions)
		fmt.Fprintf(&b, "started: %d\n", stats.Started)
		fmt.Fprintf(&b, "submitted: %d\n", stats.Submitted)
		fmt.Fprintf(&b, "failed: %d\n", stats.Failed)
	}
	if c.inbox != nil {
		fmt.Fprintf(&b, "inbox received: %d\n", c.inbox.Received())
	}
	if c.audience != nil {
		fmt.Fprintf(&b, "live visitors: %d\n", c.audience.Count())
	}
	if parts, err := c.Countdown(); err == nil {
		if parts.Expired {
			b.WriteString("bootcamp: applications closed\n")
		} else {
			fmt.Fprintf(&b, "bootcamp: %dd %dh %dm left\n", parts.Days, parts.Hours, parts.Minutes)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
