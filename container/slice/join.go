package slice

import (
	"fmt"
	"strings"
)

// Join formats every element of s with fmt.Sprint and joins them with sep.
func Join[T any](s []T, sep string) string {
	return strings.Join(toStrings(s), sep)
}

// JoinWithNewLine joins the elements of s with a newline.
func JoinWithNewLine[T any](s []T) string {
	return Join(s, "\n")
}

// JoinWithConjunction renders s as a sentence: elements are separated by
// commas, the last two by the conjunction, and the result ends with a period.
//
//	JoinWithConjunction([]string{"a", "b", "c"}, "and") == "a, b and c."
func JoinWithConjunction[T any](s []T, conjunction string) string {
	parts := toStrings(s)
	var sentence string
	if len(parts) < 2 {
		sentence = strings.Join(parts, "")
	} else {
		last := len(parts) - 1
		sentence = strings.Join(parts[:last], ", ") + " " + strings.TrimSpace(conjunction) + " " + parts[last]
	}
	if !strings.HasSuffix(sentence, ".") {
		sentence += "."
	}
	return sentence
}

// JoinWithAnd is JoinWithConjunction with "and".
func JoinWithAnd[T any](s []T) string {
	return JoinWithConjunction(s, "and")
}

// JoinWithOr is JoinWithConjunction with "or".
func JoinWithOr[T any](s []T) string {
	return JoinWithConjunction(s, "or")
}

func toStrings[T any](s []T) []string {
	return Map(s, func(v T) string { return fmt.Sprint(v) })
}
