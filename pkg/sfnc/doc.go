// Package sfnc holds the names of the Standard Features Naming Convention
// features this library works with, their enumeration symbols and a
// description table.
//
// sfnc_gen.go is generated from docs/sfnc/features.yaml.
package sfnc

//go:generate go run ../../cmd/genicam-featgen -input ../../docs/sfnc/features.yaml -output sfnc_gen.go
