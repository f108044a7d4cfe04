package gui

import (
	"errors"

	sysdlg "github.com/sqweek/dialog"
)

// ErrDialogCancelled is returned when the user dismisses a native dialog.
var ErrDialogCancelled = errors.New("gui: dialog cancelled")

// FileFilter names a group of file extensions for the native pickers.
type FileFilter struct {
	Description string
	Extensions  []string
}

// OpenFileDialog shows the native file-open picker and returns the
// chosen path, or ErrDialogCancelled.
func OpenFileDialog(title string, filters ...FileFilter) (string, error) {
	b := sysdlg.File().Title(title)
	for _, f := range filters {
		b = b.Filter(f.Description, f.Extensions...)
	}
	path, err := b.Load()
	if errors.Is(err, sysdlg.ErrCancelled) {
		return "", ErrDialogCancelled
	}
	return path, err
}

// SaveFileDialog shows the native file-save picker.
func SaveFileDialog(title string, filters ...FileFilter) (string, error) {
	b := sysdlg.File().Title(title)
	for _, f := range filters {
		b = b.Filter(f.Description, f.Extensions...)
	}
	path, err := b.Save()
	if errors.Is(err, sysdlg.ErrCancelled) {
		return "", ErrDialogCancelled
	}
	return path, err
}

// PickDirectoryDialog shows the native directory picker.
func PickDirectoryDialog(title string) (string, error) {
	path, err := sysdlg.Directory().Title(title).Browse()
	if errors.Is(err, sysdlg.ErrCancelled) {
		return "", ErrDialogCancelled
	}
	return path, err
}

// MessageBox shows a native informational message box.
func MessageBox(title, message string) {
	sysdlg.Message("%s", message).Title(title).Info()
}

// ConfirmBox shows a native yes/no box and returns the choice.
func ConfirmBox(title, message string) bool {
	return sysdlg.Message("%s", message).Title(title).YesNo()
}
