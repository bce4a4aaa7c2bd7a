package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/livedoc/debug"
)

// Decoder reads a stream of forward messages, one per YAML document.
type Decoder struct {
	dec *yaml.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: yaml.NewDecoder(r)}
}

// Decode returns the next message, or io.EOF at the end of the stream.
// Empty documents are skipped.
func (d *Decoder) Decode() (*ForwardMsg, error) {
	for {
		msg := &ForwardMsg{}
		if err := d.dec.Decode(msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("decoding message: %w", err)
		}
		switch count(msg.NewRun != nil, msg.Delta != nil, msg.RunFinished != nil) {
		case 0:
			continue
		case 1:
			if debug.Wire() {
				debug.LogAny(msg)
			}
			return msg, nil
		default:
			return nil, fmt.Errorf("%w: message", ErrAmbiguous)
		}
	}
}

// DecodeAll reads every message from r.
func DecodeAll(r io.Reader) ([]*ForwardMsg, error) {
	dec := NewDecoder(r)
	var res []*ForwardMsg
	for {
		msg, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", len(res), err)
		}
		res = append(res, msg)
	}
}

// Encoder writes forward messages as a YAML stream readable by Decoder.
type Encoder struct {
	w     io.Writer
	first bool
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, first: true}
}

func (e *Encoder) Encode(msg *ForwardMsg) error {
	d, err := yaml.Marshal(msg)
	if err != nil {
		return err
	}
	if !e.first {
		if _, err := io.WriteString(e.w, "---\n"); err != nil {
			return err
		}
	}
	e.first = false
	_, err = e.w.Write(d)
	return err
}

// MarshalJSON returns the compact JSON form of msg.
func MarshalJSON(msg *ForwardMsg) ([]byte, error) {
	return json.Marshal(msg)
}

// UnmarshalJSON decodes a single message from its JSON form.
func UnmarshalJSON(d []byte) (*ForwardMsg, error) {
	msg := &ForwardMsg{}
	if err := json.Unmarshal(d, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
