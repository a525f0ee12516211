//go:build cgo && linux
// +build cgo,linux

package z3

/*
// libz3 is expected in a default linker path (apt: libz3-dev). Other
// locations can be supplied through CGO_CFLAGS / CGO_LDFLAGS.
#cgo LDFLAGS: -lz3
*/
import "C"
