package templates

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// folderNameRegex matches route folder names.
	folderNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// pageNameRegex matches names usable as a component identifier.
	pageNameRegex = regexp.MustCompile(`^[\p{L}_$][\p{L}\p{N}_$]*$`)
)

// ValidateFolderName checks a route folder name.
func ValidateFolderName(name string) error {
	if name == "" {
		return fmt.Errorf("folder name cannot be empty")
	}
	if !folderNameRegex.MatchString(name) {
		return fmt.Errorf("folder name %q contains invalid characters", name)
	}
	return nil
}

// ValidatePageName checks a page name. The name becomes both the component
// identifier and the file name, so it must be a single identifier.
func ValidatePageName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("page name is required")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("page name %q must not contain path separators", name)
	}
	if strings.Contains(name, ".") {
		return fmt.Errorf("page name %q must not contain dots", name)
	}
	if !pageNameRegex.MatchString(name) {
		return fmt.Errorf("page name %q must be an identifier: letters, digits, _ or $, not starting with a digit", name)
	}
	return nil
}

// ValidateDirectoryName checks a free-text path answer. Paths stay inside the project.
func ValidateDirectoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("please enter a directory name")
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, "..") {
		return fmt.Errorf("%q must be relative to the project root", name)
	}
	return nil
}

// Capitalize uppercases the first character and leaves the rest unchanged.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// SanitizeAPIPath strips a single leading slash; "//x" becomes "/x".
func SanitizeAPIPath(path string) string {
	return strings.TrimPrefix(path, "/")
}
