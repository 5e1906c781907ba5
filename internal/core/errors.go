package core

import "fmt"

// ValidationError reports bad or conflicting user input. It is fatal and
// raised before any filesystem mutation happens.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports a missing source file or directory. Fatal in
// single-file mode, a per-file skip in batch mode.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s: no such file or directory", e.Path) }

// UnsupportedTypeError reports a file whose extension is not recognized
// in media mode. It downgrades to a warning-level skip, never a failure.
type UnsupportedTypeError struct {
	Path string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported file type", e.Path)
}

// CollisionError reports that a rename target already exists. The file's
// operation fails; the batch keeps going.
type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string { return fmt.Sprintf("%s: destination already exists", e.Path) }

// TransformError reports a transformation stage that could not run, such
// as an unknown custom transform kind. Stages degrade to identity on this
// error rather than aborting the batch.
type TransformError struct {
	Kind string
	Err  error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %q: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("transform %q failed", e.Kind)
}

func (e *TransformError) Unwrap() error { return e.Err }
