package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// ClassNameHint returns a non-fatal hint when a Java file stem does not
// follow the UpperCamelCase class convention. The run step launches
// `java <stem>`, so an unconventional stem usually means the public class
// inside the file will not match it.
func ClassNameHint(stem string) string {
	if stem == "" {
		return ""
	}
	first := []rune(stem)[0]
	if unicode.IsUpper(first) && !strings.Contains(stem, "_") {
		return ""
	}
	return fmt.Sprintf("Java class names are conventionally UpperCamelCase: consider renaming %q to %q", stem, upperCamel(stem))
}

// upperCamel rebuilds a stem as UpperCamelCase from its word parts.
func upperCamel(stem string) string {
	var b strings.Builder
	for _, part := range strings.Split(stem, "_") {
		for _, w := range camelcase.Split(part) {
			if w == "" {
				continue
			}
			low := strings.ToLower(w)
			b.WriteString(strings.ToUpper(low[:1]) + low[1:])
		}
	}
	return b.String()
}
