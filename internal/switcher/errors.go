package switcher

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failures the engine reports to its caller.
// The concrete error types below unwrap to them.
var (
	ErrMissingLinkConfiguration = errors.New("module does not define a link path")
	ErrAlternativeNotFound      = errors.New("alternative not found")
	ErrInsufficientPermission   = errors.New("insufficient permissions")
	ErrSymlinkCreationFailed    = errors.New("failed to create symlink")
)

// MissingLinkError is returned when a module's descriptor has no MODULE_LINK.
type MissingLinkError struct {
	Module string
}

func (e *MissingLinkError) Error() string {
	return ErrMissingLinkConfiguration.Error()
}

func (e *MissingLinkError) Unwrap() error {
	return ErrMissingLinkConfiguration
}

// AlternativeNotFoundError is returned when a target matches no alternative
// and is not an executable absolute path.
type AlternativeNotFoundError struct {
	Module string
	Target string
}

func (e *AlternativeNotFoundError) Error() string {
	return fmt.Sprintf("alternative '%s' not found", e.Target)
}

func (e *AlternativeNotFoundError) Unwrap() error {
	return ErrAlternativeNotFound
}

// PermissionError is returned when the link's directory is not writable.
type PermissionError struct {
	LinkPath string
	Err      error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("insufficient permissions to modify %s", e.LinkPath)
}

func (e *PermissionError) Unwrap() []error {
	return []error{ErrInsufficientPermission, e.Err}
}

// SymlinkError is returned when the new link could not be put in place.
// The previous link, if any, is left untouched.
type SymlinkError struct {
	LinkPath string
	Target   string
	Err      error
}

func (e *SymlinkError) Error() string {
	return fmt.Sprintf("failed to create symlink: %v", e.Err)
}

func (e *SymlinkError) Unwrap() []error {
	return []error{ErrSymlinkCreationFailed, e.Err}
}
