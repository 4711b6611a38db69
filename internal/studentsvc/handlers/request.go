package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// text accepts any JSON scalar and keeps its literal text, so "prn": 1
// is stored as "1" the same way the document mapper casts it.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	case '{', '[':
		return fmt.Errorf("cannot use %s as a string value", b)
	case 't', 'f':
		*t = text(b)
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return err
		}
		*t = text(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}

type createStudentRequest struct {
	Name       text `json:"name"`
	PRN        text `json:"prn"`
	Department text `json:"department"`
}

type updateStudentRequest struct {
	Name       text `json:"name"`
	Department text `json:"department"`
}

// decodeBody treats an empty body as {}.
func decodeBody(r io.Reader, v interface{}) error {
	if err := json.NewDecoder(r).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
