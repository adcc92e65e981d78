package dto

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OptInt é um inteiro opcional. O feed envia placares como string ("12")
// e pontos como número; ambos são aceitos, null/"" viram ausente.
type OptInt struct {
	Value int
	Valid bool
}

// Int cria um OptInt presente
func Int(v int) OptInt { return OptInt{Value: v, Valid: true} }

func (o OptInt) Get() (int, bool) { return o.Value, o.Valid }

func (o *OptInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*o = OptInt{}
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("optint: %w", err)
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*o = OptInt{}
			return nil
		}
	}

	if v, err := strconv.Atoi(raw); err == nil {
		*o = Int(v)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) {
		return fmt.Errorf("optint: %q is not an integer", raw)
	}
	*o = Int(int(f))
	return nil
}

func (o OptInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(o.Value)), nil
}
