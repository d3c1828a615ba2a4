package config

import (
	"path/filepath"
	"strings"
)

const SourceFileExt = ".hs"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".hs"}

// ConfigFileNames are looked up, in order, by FindConfig.
var ConfigFileNames = []string{"hsfront.yaml", "hsfront.yml"}

// EndOfInputComment is the text of the Comment statement that closes every Program.
const EndOfInputComment = "end of input"

// Keywords of the surface syntax
const (
	DataKeyword      = "data"
	OtherwiseKeyword = "otherwise"
)

// NegateOperator is the only prefix operator the grammar produces.
const NegateOperator = "-"

// Values accepted by the enum-like configuration fields
const (
	ApplicationLowest  = "lowest"
	ApplicationHighest = "highest"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	AssocLeft  = "left"
	AssocRight = "right"
)

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range SourceFileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TrimSourceExt strips a recognized source extension from name.
func TrimSourceExt(name string) string {
	if HasSourceExt(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}
