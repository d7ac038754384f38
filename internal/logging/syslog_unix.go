//go:build !windows && !plan9

package logging

import (
	"fmt"
	"io"
	"log/syslog"

	"github.com/rs/zerolog"
)

// openSyslog connects to the local syslog daemon. zerolog maps each event's
// level onto the matching syslog priority.
func openSyslog() (io.Writer, io.Closer, error) {
	w, err := syslog.New(syslog.LOG_DEBUG|syslog.LOG_USER, Tag)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to syslog: %w", err)
	}
	return zerolog.SyslogLevelWriter(w), w, nil
}
