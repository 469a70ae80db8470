package medicines

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// readFileDecoded reads a CSV source file and returns UTF-8 bytes.
// Spreadsheet exports are frequently Windows-1252 encoded, so any file
// that is not valid UTF-8 is decoded through that charmap first.
func readFileDecoded(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if utf8.Valid(raw) {
		return raw, nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s as Windows-1252: %w", path, err)
	}

	return decoded, nil
}
