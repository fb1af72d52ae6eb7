/*
Package server implements msgpack IPC for rack solving services.

The server reads binary msgpack requests from stdin and writes msgpack
responses to stdout, one message per request, processed synchronously
with timing info included in responses. The transport is meant for
editor and GUI frontends that keep a rackserve process alive and feed
it solve requests as the user types.

# IPC

Every request carries an op field selecting the operation and an id
echoed back in the response. A missing id is replaced by a generated
UUID so responses stay correlatable.

Solve requests carry the rack and the optional constraints:

	{"id": "req_001", "op": "solve", "r": "TAC?", "sw": "CA", "sort": "score"}

The server responds with the playable words and adjusted scores,
ordered under the requested sort mode:

	{"id": "req_001", "s": [{"w": "ACT", "p": 5}, {"w": "CAT", "p": 5}], "c": 2, "t": 145}

Dict requests report the loaded word list:

	{"id": "dict_001", "op": "dict"}

Config requests adjust server limits without a restart:

	{"id": "cfg_001", "op": "config", "max_limit": 100}

Errors come back with the request id, a message, and an HTTP-style code.
*/
package server

// Request is one incoming IPC message. Op selects the operation:
// "solve", "dict", "config", or "ping".
type Request struct {
	ID         string `msgpack:"id"`
	Op         string `msgpack:"op"`
	Rack       string `msgpack:"r,omitempty"`
	StartsWith string `msgpack:"sw,omitempty"`
	EndsWith   string `msgpack:"ew,omitempty"`
	Contains   string `msgpack:"ct,omitempty"`
	Sort       string `msgpack:"sort,omitempty"`
	Limit      int    `msgpack:"l,omitempty"`

	// config op fields
	MaxLimit     *int  `msgpack:"max_limit,omitempty"`
	MaxRackLen   *int  `msgpack:"max_rack_len,omitempty"`
	EnableFilter *bool `msgpack:"enable_filter,omitempty"`
}

// ResultEntry is one playable word in a solve response.
type ResultEntry struct {
	Word  string `msgpack:"w"`
	Score int    `msgpack:"p"`
}

// SolveResponse answers a solve request. TimeTaken is microseconds.
type SolveResponse struct {
	ID        string        `msgpack:"id"`
	Results   []ResultEntry `msgpack:"s"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// DictResponse answers a dict request.
type DictResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	WordCount int    `msgpack:"word_count"`
}

// StatusResponse answers ping and config requests.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
