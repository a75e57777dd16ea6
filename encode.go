package strand

import "encoding/json"

// MarshalText implements encoding.TextMarshaler. The returned bytes are a
// copy owned by the caller.
func (s Str[C, P]) MarshalText() ([]byte, error) {
	return s.BytesCopy(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Decoding goes
// through validated construction: invalid UTF-8 in the payload is an
// error, never a panic, and s is left unchanged on failure.
func (s *Str[C, P]) UnmarshalText(b []byte) error {
	decoded, err := fromBytes[C, P](b)
	if err != nil {
		return err
	}
	s.Release()
	*s = decoded
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the logical content as
// a JSON string.
func (s Str[C, P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler. The decoded text is
// validated before it replaces the previous content.
func (s *Str[C, P]) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(text))
}
