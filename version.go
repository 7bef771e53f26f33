// Package datasheet is the root of the spreadsheet interaction module. The
// interaction core lives in grid; the Bubble Tea component in sheet.
package datasheet

import (
	_ "embed"
	"regexp"
	"strings"
)

// semverRE matches SemVer 2.0.0 without a leading "v".
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version, e.g. "0.1.0".
func Version() string { return strings.TrimSpace(embeddedVersion) }

// VersionTag returns Version as a git tag.
func VersionTag() string { return "v" + Version() }

// IsSemver reports whether v is a SemVer version without the "v" prefix.
func IsSemver(v string) bool { return semverRE.MatchString(strings.TrimSpace(v)) }
