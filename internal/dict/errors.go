package dict

import "fmt"

// ReadError reports a failed dictionary read. A missing dictionary file is
// not a ReadError; the store reports that as an empty entry set.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read dictionary %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed dictionary write.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write dictionary %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// MalformedRecordError reports a binary string record that could not be
// decoded. Raw carries the offending record text (or the unterminated tail of
// the buffer) for diagnosis.
type MalformedRecordError struct {
	Index  int
	Raw    string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed dictionary record %d: %s: %q", e.Index, e.Reason, e.Raw)
}
