// Package logging provides a unified logging interface for the integral
// calculation client. It abstracts the underlying zerolog implementation so
// the transport, controller and front ends log with the same structured
// fields.
package logging
