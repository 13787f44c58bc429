// Copyright © 2026 The kconf authors

// Package parser provides the default Kconfig parser implementation.
package parser

import (
	"github.com/kbuildtools/kconf/kconfig"
	"github.com/kbuildtools/kconf/parser/rdparser"
)

// NewReader returns the default kconfig.Reader implementation.
func NewReader() kconfig.Reader {
	return rdparser.NewReader()
}
