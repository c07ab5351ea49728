package beacon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"school-directory-service/internal/domain"
)

var ErrEmptyEnvelope = errors.New("beacon envelope: no entries")

// DecodeEnvelope reads the directory payload: a JSON object wrapping the list.
//
// The school list is the value of the first key in document order, whatever the
// key is named; any later keys are ignored.
func DecodeEnvelope(r io.Reader) ([]domain.School, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("beacon envelope: read opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("beacon envelope: expected object, got %v", tok)
	}

	if !dec.More() {
		return nil, ErrEmptyEnvelope
	}

	key, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("beacon envelope: read key: %w", err)
	}

	var schools []domain.School
	if err := dec.Decode(&schools); err != nil {
		return nil, fmt.Errorf("beacon envelope: decode %q: %w", key, err)
	}
	if schools == nil {
		schools = []domain.School{}
	}

	return schools, nil
}
