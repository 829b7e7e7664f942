// Package simserver hosts headless PIN-entry sessions over WebSocket.
//
// Each connection to /session gets its own engine instance. The client
// drives it with JSON-encoded button and tick events and receives the
// resulting screen content after every applied event; the session ends
// with an outcome frame when ENTER commits a non-empty PIN or the client
// sends cancel. See the protocol package for the wire format.
//
// Running simulators advertise themselves on mDNS as _pinpad-sim._tcp so
// harnesses on the same network can discover them without configuration.
// The advertisement is best-effort: a network that blocks multicast only
// costs discoverability, never the server itself.
package simserver
