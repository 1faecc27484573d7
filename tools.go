//go:build tools

// Package tools pins the versions of moq (go:generate mocks) and the goose
// CLI. It is not compiled into the binary.
package tools

import (
	_ "github.com/matryer/moq"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
