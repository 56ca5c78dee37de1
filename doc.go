// Package xutil provides a unit conversion engine and a set of developer
// utilities, usable as a library, a command-line tool, an HTTP JSON API and
// an MCP server.
//
// # Overview
//
// The library consists of the following packages:
//
//   - unitconv: Convert values between the units of a domain (length, temperature, ...)
//   - formatconv: Convert documents between YAML, JSON, XML and CSV, and generate types from JSON
//   - codec: Encode, decode and hash text, convert numbers between bases, sign and verify JWTs
//   - generate: Generate UUIDs, ULIDs and random passwords
//   - textutil: Generate Lorem Ipsum text and URL slugs
//   - timeconv: Convert Unix timestamps and wall-clock times between IANA time zones
//   - xuerrors: Error types shared by every package
//
// Every package validates its input and reports failures with the error
// types in xuerrors, so callers can classify any error with errors.As or
// errors.Is regardless of where it came from.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/xutil
//
// # Quick Start
//
// Convert a value to every unit of a domain:
//
//	import "github.com/erraggy/xutil/unitconv"
//
//	res, err := unitconv.Length.Convert(1, "km")
//	if err != nil {
//		log.Fatal(err)
//	}
//	m, _ := res.Get("m") // 1000
//
// Look a domain up by name and convert to a single unit:
//
//	d, ok := unitconv.Lookup("temperature")
//	if !ok {
//		log.Fatal("unknown domain")
//	}
//	f, err := d.ConvertBetween(100, "celsius", "fahrenheit") // 212
//
// Convert YAML to JSON, keeping key order:
//
//	import "github.com/erraggy/xutil/formatconv"
//
//	out, err := formatconv.YAMLToJSON("name: demo\nreplicas: 3\n")
//
// Encode and hash text:
//
//	import "github.com/erraggy/xutil/codec"
//
//	enc, err := codec.Encode(codec.Base64, "hello") // aGVsbG8=
//	sum, err := codec.Hash(codec.SHA256, "hello")
//
// # Error Handling
//
// Failures fall into a small set of kinds: invalid input, unknown unit,
// out-of-domain or non-finite value, and rejected token. Use errors.Is with
// the xuerrors sentinels to branch on the kind:
//
//	_, err := unitconv.Length.Convert(-1, "m")
//	if errors.Is(err, xuerrors.ErrOutOfDomain) {
//		// value must be greater than zero
//	}
//
// # Command-Line Interface
//
// In addition to the library packages, xutil provides a command-line interface:
//
//	# Convert units
//	xutil convert length 1 km
//	xutil convert temperature 100 celsius --to fahrenheit
//
//	# Convert documents
//	xutil format yaml-to-json config.yaml
//
//	# Run the HTTP JSON API
//	xutil serve --addr :8080
//
//	# Run the MCP server over stdio
//	xutil mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/xutil/cmd/xutil@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/xutil
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/xutil
package xutil
