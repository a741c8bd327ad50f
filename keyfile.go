package strcrypto

import (
	"fmt"
	"os"
	"strings"

	"github.com/strcrypto/strcrypto-go/internal/keyfile"
)

// SaveMode selects where Save writes the ciphertext and key lines.
type SaveMode string

const (
	// SaveNone performs no I/O.
	SaveNone SaveMode = "none"
	// SaveSingleFile writes both lines to one file.
	SaveSingleFile SaveMode = "one"
	// SaveTwoFiles writes the string line and the key line to separate files.
	SaveTwoFiles SaveMode = "separate"
)

// Default file names used when Save is given no path.
const (
	DefaultSingleFile = "string_and_key.txt"
	DefaultStringFile = "string.txt"
	DefaultKeyFile    = "key.txt"
)

// fileMode keeps key material private to the owner.
const fileMode = 0o600

// ParseSaveMode accepts the long names and their one-letter forms
// ("n", "o", "s"), case-insensitively.
func ParseSaveMode(s string) (SaveMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n", "no", "none":
		return SaveNone, nil
	case "o", "one", "single":
		return SaveSingleFile, nil
	case "s", "separate", "two":
		return SaveTwoFiles, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSaveMode, s)
	}
}

// Record is an obfuscated string together with its key.
type Record struct {
	Ciphertext string `json:"string"`
	Key        string `json:"key"`
}

// Save writes the record lines according to mode and returns the paths it
// wrote. paths holds up to two optional file names; empty entries fall back
// to the defaults. In SaveTwoFiles mode the string file is written first and
// is not removed if writing the key file fails. Values containing a line
// break are rejected with *UnsavableValueError before anything is written.
func Save(ciphertext, key string, mode SaveMode, paths ...string) ([]string, error) {
	if len(paths) > 2 {
		return nil, fmt.Errorf("save accepts at most two paths, got %d", len(paths))
	}
	primary, secondary := pathAt(paths, 0), pathAt(paths, 1)

	switch mode {
	case SaveNone:
		return nil, nil

	case SaveSingleFile:
		if err := checkSavable(ciphertext, key); err != nil {
			return nil, err
		}
		if primary == "" {
			primary = DefaultSingleFile
		}
		data := append(keyfile.Line(keyfile.FieldString, ciphertext), keyfile.Line(keyfile.FieldKey, key)...)
		if err := writeFile(primary, data); err != nil {
			return nil, err
		}
		return []string{primary}, nil

	case SaveTwoFiles:
		if err := checkSavable(ciphertext, key); err != nil {
			return nil, err
		}
		if primary == "" {
			primary = DefaultStringFile
		}
		if secondary == "" {
			secondary = DefaultKeyFile
		}
		if err := writeFile(primary, keyfile.Line(keyfile.FieldString, ciphertext)); err != nil {
			return nil, err
		}
		if err := writeFile(secondary, keyfile.Line(keyfile.FieldKey, key)); err != nil {
			return []string{primary}, err
		}
		return []string{primary, secondary}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSaveMode, string(mode))
	}
}

// Load reads the record from primary and, if given, one secondary file.
// The "string : " and "key : " lines may appear in either file and in
// either order.
func Load(primary string, secondary ...string) (*Record, error) {
	if len(secondary) > 1 {
		return nil, fmt.Errorf("load accepts at most two paths, got %d", 1+len(secondary))
	}

	bufs := make([][]byte, 0, 2)
	for _, path := range append([]string{primary}, secondary...) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		bufs = append(bufs, data)
	}

	values, err := keyfile.Parse([]keyfile.Field{keyfile.FieldString, keyfile.FieldKey}, bufs...)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Record{
		Ciphertext: values[keyfile.FieldString],
		Key:        values[keyfile.FieldKey],
	}, nil
}

// DecryptFile loads a record with Load and decrypts it.
func DecryptFile(primary string, secondary ...string) (string, error) {
	rec, err := Load(primary, secondary...)
	if err != nil {
		return "", err
	}
	return Decrypt(rec.Ciphertext, rec.Key)
}

func checkSavable(ciphertext, key string) error {
	if err := keyfile.Validate(keyfile.FieldString, ciphertext); err != nil {
		return wrapError(err)
	}
	return wrapError(keyfile.Validate(keyfile.FieldKey, key))
}

func pathAt(paths []string, i int) string {
	if i < len(paths) {
		return paths[i]
	}
	return ""
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
