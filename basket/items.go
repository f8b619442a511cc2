package basket

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cashback"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when no item has the requested name.
	ErrNotFound = errors.New("item not found")
	// ErrLastItem is returned when removing the only item of a basket.
	ErrLastItem = errors.New("cannot remove the last item")
)

// ItemSpec is an item as entered by the user. A nil rate is inherited from
// the configuration.
type ItemSpec struct {
	Name  string          `json:"name" validate:"required"`
	Cost  decimal.Decimal `json:"cost" validate:"gte=0"`
	Earn  *cashback.Rate  `json:"earn,omitempty"`
	Spend *cashback.Rate  `json:"spend,omitempty"`
}

// Validate checks the item spec.
func (s ItemSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid item %q: %w", s.Name, err)
	}
	return nil
}

// DecodeItems decodes item specs from a stream of JSONL data.
func DecodeItems(r io.Reader) ([]ItemSpec, error) {
	var specs []ItemSpec
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var s ItemSpec
		if err := json.Unmarshal(lineBytes, &s); err != nil {
			return nil, fmt.Errorf("line %d: could not decode item %q: %w", line, string(lineBytes), err)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		specs = append(specs, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return specs, nil
}

// EncodeItem writes a single item spec as one JSON line.
func EncodeItem(w io.Writer, s ItemSpec) error {
	if err := s.Validate(); err != nil {
		return err
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// LoadItems reads the items file at 'path'. A missing file returns no items
// and an error matching fs.ErrNotExist.
func LoadItems(path string) ([]ItemSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	specs, err := DecodeItems(f)
	if err != nil {
		return nil, fmt.Errorf("items file %q: %w", path, err)
	}
	return specs, nil
}

// SaveItems replaces the items file at 'path' with 'specs'.
func SaveItems(path string, specs []ItemSpec) error {
	var buf bytes.Buffer
	for _, s := range specs {
		if err := EncodeItem(&buf, s); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// AppendItem appends a single item spec to the items file at 'path',
// creating it if it doesn't exist.
func AppendItem(path string, s ItemSpec) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := EncodeItem(f, s); err != nil {
		f.Close()
		return fmt.Errorf("could not append to %q: %w", path, err)
	}
	return f.Close()
}

// Remove returns the specs without the first one named 'name'. The input
// slice is not modified.
func Remove(specs []ItemSpec, name string) ([]ItemSpec, error) {
	for i, s := range specs {
		if s.Name != name {
			continue
		}
		if len(specs) == 1 {
			return nil, fmt.Errorf("%q: %w", name, ErrLastItem)
		}
		out := make([]ItemSpec, 0, len(specs)-1)
		out = append(out, specs[:i]...)
		return append(out, specs[i+1:]...), nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}
