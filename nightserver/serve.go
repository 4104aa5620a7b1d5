// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nightserver

import (
	"net"
	"strconv"
	"strings"
)

// DefaultPort is used when the address to listen on does not name a
// port.
const DefaultPort = "8080"

// ListenAddr returns a host:port address for addr suitable for
// webapp.NewHTTPServer. An empty addr or one that is a bare port number
// listens on all interfaces and a bare host name uses DefaultPort.
func ListenAddr(addr string) string {
	switch {
	case len(addr) == 0:
		return ":" + DefaultPort
	case strings.Contains(addr, ":"):
		return addr
	}
	if _, err := strconv.Atoi(addr); err == nil {
		return ":" + addr
	}
	return net.JoinHostPort(addr, DefaultPort)
}
