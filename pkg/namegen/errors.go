package namegen

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is matched by every compile failure.
	ErrSyntax = errors.New("namegen: syntax error")

	// ErrUnbalancedBrackets is returned for a closing bracket with no open group.
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")

	// ErrUnexpectedBracket is returned when '>' closes a literal group or ')'
	// closes a symbol group.
	ErrUnexpectedBracket = errors.New("unexpected bracket")

	// ErrMissingClosingBracket is returned when groups are still open at the
	// end of the pattern.
	ErrMissingClosingBracket = errors.New("missing closing brackets")

	// ErrNestingTooDeep is returned when nesting exceeds the limit set by WithMaxDepth.
	ErrNestingTooDeep = errors.New("brackets nested too deep")
)

// SyntaxError describes why a pattern failed to compile.
type SyntaxError struct {
	// Offset is the byte offset of the offending rune, or the pattern length
	// when the problem is detected at the end of input.
	Offset int
	// Char is the offending rune, zero at end of input.
	Char rune
	// Err is one of the cause sentinels above.
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("namegen: %v at end of pattern", e.Err)
	}
	return fmt.Sprintf("namegen: %v: %q at offset %d", e.Err, e.Char, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Is reports a match for ErrSyntax so callers need not know the cause.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
