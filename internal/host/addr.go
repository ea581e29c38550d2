package host

import (
	"encoding/binary"
	"net"
)

// InAddr is an IPv4 address with the first octet in the most
// significant byte.  NetOrder gives the wire (network order) bytes.
type InAddr uint32

const (
	// AddrAny is 0.0.0.0, the wildcard listen address.
	AddrAny InAddr = 0x00000000
	// AddrLoopback is 127.0.0.1.
	AddrLoopback InAddr = 0x7f000001
	// AddrNone is 255.255.255.255, the "no address" sentinel.
	AddrNone InAddr = 0xffffffff
)

// AddrFromIP converts ip to an InAddr.  Non-IPv4 input yields AddrNone.
func AddrFromIP(ip net.IP) InAddr {
	v4 := ip.To4()
	if v4 == nil {
		return AddrNone
	}
	return InAddr(binary.BigEndian.Uint32(v4))
}

// ParseAddr parses a dotted-quad string.  Invalid input yields AddrNone.
func ParseAddr(s string) InAddr {
	return AddrFromIP(net.ParseIP(s))
}

// NetOrder returns the address bytes in network byte order.
func (a InAddr) NetOrder() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(a))
	return b
}

// IP returns the address as a net.IP.
func (a InAddr) IP() net.IP {
	b := a.NetOrder()
	return net.IPv4(b[0], b[1], b[2], b[3])
}

func (a InAddr) String() string {
	return a.IP().String()
}
