// Package uapiversion compares version strings according to the UAPI
// version format specification, the scheme shared by systemd and RPM.
//
// See https://uapi-group.org/specifications/specs/version_format_specification/
//
// The format imposes no schema on version strings: every string, including
// the empty string, has a well-defined place in a single total order.
// Compare orders two strings directly; Version wraps a string so that
// collections of versions can be compared and sorted.
package uapiversion
