package workset

import (
	"fmt"
	"strings"
)

// Report renders a read-only summary of every known set: its activation
// status and, for active sets, each recorded resource with its visibility
// as reported by the host.
func (c *Context) Report() string {
	var b strings.Builder
	for _, name := range c.names {
		handles, isActive := c.active[name]
		if !isActive {
			fmt.Fprintf(&b, "%s\n", name)
			continue
		}
		fmt.Fprintf(&b, "%s (Applied)\n", name)
		for _, h := range handles {
			switch {
			case !h.OK():
				fmt.Fprintf(&b, "    %s [open failed: %s]\n", h.Locator, h.Err)
			case c.host.IsResourceVisible(h):
				fmt.Fprintf(&b, "    %s [visible]\n", h.Locator)
			default:
				fmt.Fprintf(&b, "    %s [hidden]\n", h.Locator)
			}
		}
	}
	return b.String()
}
