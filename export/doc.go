// Package export posts conversation exports to the MentraFlow backend.
//
// A Client wraps the raw tool arguments in an Envelope, sends it to the
// receive-export endpoint and decodes the backend's Result. Only HTTP 200 is a
// success; any other status is reported as a *StatusError.
package export
