package bmf

import "fmt"

// ErrorKind classifies a decoding failure. All kinds are terminal: a malformed
// descriptor will not become valid by trying again.
//
// ErrorKind implements the error interface, which lets clients test for a
// certain kind of failure with errors.Is:
//
//	if errors.Is(err, bmf.ErrPageCountMismatch) { … }
type ErrorKind int

const (
	// ErrTruncatedInput: buffer is shorter than required at the point of read.
	ErrTruncatedInput ErrorKind = iota + 1
	// ErrInvalidMagic: the file does not start with 'BMF'.
	ErrInvalidMagic
	// ErrUnsupportedVersion: the version byte is not supported.
	ErrUnsupportedVersion
	// ErrTruncatedBlock: a block header or payload exceeds the remaining buffer.
	ErrTruncatedBlock
	// ErrMalformedInfoBlock: info payload is shorter than its fixed fields.
	ErrMalformedInfoBlock
	// ErrMalformedCommonBlock: common payload does not have its exact size.
	ErrMalformedCommonBlock
	// ErrMalformedPagesBlock: page names have an inconsistent stride or lack a terminator.
	ErrMalformedPagesBlock
	// ErrMalformedCharsBlock: chars payload is not a multiple of the record size.
	ErrMalformedCharsBlock
	// ErrMalformedKerningBlock: kerning payload is not a multiple of the record size.
	ErrMalformedKerningBlock
	// ErrDuplicateBlock: a second info or common block has been found.
	ErrDuplicateBlock
	// ErrMissingRequiredBlock: info or common block absent at end of input.
	ErrMissingRequiredBlock
	// ErrPageCountMismatch: common.pages differs from the number of page names.
	ErrPageCountMismatch
)

var errorKindNames = [...]string{
	"UNKNOWN",
	"TruncatedInput",
	"InvalidMagic",
	"UnsupportedVersion",
	"TruncatedBlock",
	"MalformedInfoBlock",
	"MalformedCommonBlock",
	"MalformedPagesBlock",
	"MalformedCharsBlock",
	"MalformedKerningBlock",
	"DuplicateBlock",
	"MissingRequiredBlock",
	"PageCountMismatch",
}

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(errorKindNames) {
		return errorKindNames[0]
	}
	return errorKindNames[k]
}

func (k ErrorKind) Error() string {
	return "BMFont format: " + k.String()
}

// DecodeError is the error type returned by Parse.
// It locates the problem within the input, so that broken files may be
// diagnosed.
type DecodeError struct {
	Kind   ErrorKind // classification of the error
	Block  BlockType // type of the block in question, 0 if the error is not block-related
	Offset uint32    // absolute byte offset in the input where the error occurred
	Issue  string    // human-readable description of the issue
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Block != 0 {
		return fmt.Sprintf("[%s] %s block at offset %d: %s", e.Kind.String(), e.Block, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] at offset %d: %s", e.Kind.String(), e.Offset, e.Issue)
}

// Unwrap returns the error kind, making DecodeError usable with errors.Is.
func (e *DecodeError) Unwrap() error {
	return e.Kind
}

func errDecode(kind ErrorKind, block BlockType, offset int, format string, args ...any) *DecodeError {
	return &DecodeError{
		Kind:   kind,
		Block:  block,
		Offset: uint32(offset),
		Issue:  fmt.Sprintf(format, args...),
	}
}

// Warning represents a non-critical observation made during decoding.
// Warnings do not prevent usage of a font.
type Warning struct {
	Block  BlockType // type of the block in question
	Issue  string    // human-readable description of the warning
	Offset uint32    // absolute byte offset of the block
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("[WARNING] %s block at offset %d: %s", w.Block, w.Offset, w.Issue)
}

// warningCollector accumulates warnings during decoding.
type warningCollector struct {
	warnings []Warning
}

// addWarning records a decoding warning.
func (wc *warningCollector) addWarning(block BlockType, issue string, offset uint32) {
	tracer().Infof("%s block at offset %d: %s", block, offset, issue)
	wc.warnings = append(wc.warnings, Warning{
		Block:  block,
		Issue:  issue,
		Offset: offset,
	})
}

// hasWarnings returns true if any warnings have been recorded.
func (wc *warningCollector) hasWarnings() bool {
	return len(wc.warnings) > 0
}
