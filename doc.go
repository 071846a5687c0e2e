// File: lixenwraith/confee/doc.go

// Package confee loads `key<delim>value` configuration files over a set of default
// values and converts the stored text to typed values on demand.
//
// Features:
//   - One pair per line, split at the first delimiter; blank lines are ignored
//   - Caller-chosen delimiter (':' by default)
//   - All-or-nothing updates: a file with a malformed line changes nothing
//   - Generic typed retrieval: numbers, booleans, durations, URLs, IP addresses
//     and any encoding.TextUnmarshaler
//   - Struct decoding with `conf` tags
//   - Defaults from TOML, YAML or JSON files
//   - Atomic save in the line format
//
// Quick Start:
//
//	conf := confee.MustNew(
//	    confee.Pair{Key: "log", Value: "stdout"},
//	    confee.Pair{Key: "dir", Value: "/var/www/html/"},
//	    confee.Pair{Key: "port", Value: "8080"},
//	)
//
//	if err := conf.WithSource("app.conf").Update(); err != nil {
//	    log.Fatal(err)
//	}
//
//	port, err := confee.Get[uint16](conf, "port") // fallible
//	logTarget := conf.MustGetRaw("log")            // panics if absent
//
// File format:
//
//	log: stdout
//	dir: ./example/
//	addr: 127.0.0.1:8080
//
// Keys are case-sensitive. Values may contain the delimiter; only the first
// occurrence on a line separates key from value.
//
// Thread Safety:
// Conf performs no locking. Share an instance across goroutines only behind
// external synchronization.
package confee
