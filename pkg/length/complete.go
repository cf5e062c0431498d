package length

import (
	"regexp"
	"strings"
)

var partialPattern = regexp.MustCompile(`^(\d+(?:\.\d*)?|\.\d+)(\s*)([[:alpha:]]*)$`)

// Complete returns the lengths that a partially typed argument such as "5c"
// can be completed to. Nothing is suggested until the scalar has been typed.
func Complete(partial string) []string {
	m := partialPattern.FindStringSubmatch(partial)
	if m == nil {
		return nil
	}

	scalar, space, prefix := m[1], m[2], m[3]

	var completions []string
	for _, token := range Tokens() {
		if strings.HasPrefix(token, prefix) {
			completions = append(completions, scalar+space+token)
		}
	}
	return completions
}
