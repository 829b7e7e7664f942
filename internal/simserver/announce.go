package simserver

import (
	"fmt"
	"net"
	"os"

	"github.com/grandcat/zeroconf"

	"github.com/muurk/pinpad/internal/version"
)

const (
	// ServiceType is the mDNS service type simulators advertise under.
	ServiceType = "_pinpad-sim._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."
)

// Announce registers the simulator on mDNS so test harnesses can find
// running instances by browsing for ServiceType. The returned function
// withdraws the advertisement.
func Announce(addr net.Addr) (func(), error) {
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		return nil, fmt.Errorf("cannot announce non-TCP address %v", addr)
	}

	host, err := os.Hostname()
	if err != nil {
		host = "pinpad-sim"
	}
	instance := fmt.Sprintf("pinpad-sim on %s", host)

	server, err := zeroconf.Register(
		instance,
		ServiceType,
		ServiceDomain,
		tcpAddr.Port,
		[]string{"version=" + version.Version, "path=/session"},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	return server.Shutdown, nil
}
