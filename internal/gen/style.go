package gen

import (
	"fmt"
	"strings"

	"easyinit/internal/common"
)

// Style selects which initializers are synthesized for a declaration.
type Style int

const (
	// ExtensionStyle emits only the copy-with-overrides initializer.
	ExtensionStyle Style = iota
	// MemberStyle emits the full-field initializer and the copy-with-overrides
	// initializer.
	MemberStyle
)

// String returns the flag/config spelling of the style.
func (s Style) String() string {
	switch s {
	case ExtensionStyle:
		return "extension"
	case MemberStyle:
		return "member"
	default:
		return common.UnknownStr
	}
}

// ParseStyle parses a style name as accepted by String.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "extension":
		return ExtensionStyle, nil
	case "member":
		return MemberStyle, nil
	default:
		return 0, fmt.Errorf("unknown style %q (want member or extension)", name)
	}
}
