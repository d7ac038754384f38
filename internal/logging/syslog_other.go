//go:build windows || plan9

package logging

import (
	"errors"
	"io"
)

func openSyslog() (io.Writer, io.Closer, error) {
	return nil, nil, errors.New("syslog sink is not supported on this platform")
}
