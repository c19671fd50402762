package errors

import (
	"strings"
	"unicode"
)

// ValidateIdentity validates a tile identity string for safety and
// correctness. Identities name palette assets, so they must be usable as
// relative file paths.
//
// The validation rules are intentionally conservative:
//   - No empty identities
//   - No control characters or null bytes
//   - No path traversal sequences (.., //)
//   - No absolute paths or backslashes
//   - Maximum length of 256 characters
//
// Whether the identity carries a connection signature is not checked here;
// signature parsing treats unparseable identities as decorative tiles.
func ValidateIdentity(identity string) error {
	if identity == "" {
		return New(ErrCodeInvalidIdentity, "tile identity cannot be empty")
	}

	if len(identity) > 256 {
		return New(ErrCodeInvalidIdentity, "tile identity too long (max 256 characters)")
	}

	for _, r := range identity {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidIdentity, "tile identity contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(identity, pattern) {
			return New(ErrCodeInvalidIdentity, "tile identity contains invalid characters: %q", pattern)
		}
	}

	if strings.HasPrefix(identity, "/") {
		return New(ErrCodeInvalidIdentity, "tile identity must be relative (cannot start with /)")
	}

	return nil
}

// ValidatePalette validates a full ordered palette: every identity must
// pass [ValidateIdentity] and identities must be unique.
func ValidatePalette(palette []string) error {
	if len(palette) == 0 {
		return New(ErrCodeInvalidPalette, "palette cannot be empty")
	}

	seen := make(map[string]bool, len(palette))
	for i, identity := range palette {
		if err := ValidateIdentity(identity); err != nil {
			return Wrap(ErrCodeInvalidPalette, err, "palette entry %d", i)
		}
		if seen[identity] {
			return New(ErrCodeInvalidPalette, "duplicate tile identity: %q", identity)
		}
		seen[identity] = true
	}

	return nil
}

// ValidateCanvasName validates a user-supplied canvas or pattern name.
//
// Validation rules:
//   - Name cannot be empty or whitespace only
//   - Maximum length of 120 characters
//   - No control characters
func ValidateCanvasName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	const maxNameLength = 120
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name contains invalid characters")
		}
	}

	return nil
}

// ValidateGeometry validates canvas lattice dimensions and pixel metrics.
//
// Validation rules:
//   - Rows and columns must be positive
//   - At most 4096 cells per axis
//   - Tile size must be positive, gap non-negative
func ValidateGeometry(rows, columns int, tileSize, gap float64) error {
	const maxAxis = 4096

	if rows <= 0 || columns <= 0 {
		return New(ErrCodeInvalidGeometry, "grid dimensions must be positive, got %dx%d", columns, rows)
	}
	if rows > maxAxis || columns > maxAxis {
		return New(ErrCodeInvalidGeometry, "grid dimensions too large (max %d per axis)", maxAxis)
	}
	if tileSize <= 0 {
		return New(ErrCodeInvalidGeometry, "tile size must be positive, got %v", tileSize)
	}
	if gap < 0 {
		return New(ErrCodeInvalidGeometry, "gap cannot be negative, got %v", gap)
	}

	return nil
}
