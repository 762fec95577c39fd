package control

import "errors"

// Violations of the package naming rules in Debian Policy 5.6.1.
var (
	ErrNameLength  = errors.New("package name must be at least two characters long")
	ErrNamePrefix  = errors.New("package name must start with a lowercase alphanumeric character")
	ErrNameCharset = errors.New("package name may only contain lowercase alphanumerics and '+', '-' or '.'")
)

// ValidPackageName checks a source or binary package name against Debian
// Policy 5.6.1: at least two characters, starting with a lowercase letter
// or digit, and containing only lowercase letters, digits, '+', '-' and
// '.' characters.
func ValidPackageName(name string) error {
	if len(name) < 2 {
		return ErrNameLength
	}
	if !isLowerAlnum(name[0]) {
		return ErrNamePrefix
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if isLowerAlnum(c) || c == '+' || c == '-' || c == '.' {
			continue
		}
		return ErrNameCharset
	}
	return nil
}

func isLowerAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
