package fileops

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/toyz/compat-migrate/internal/errors"
)

// Codec converts file bytes of a character encoding to text and back
type Codec struct {
	name     string
	encoding encoding.Encoding
}

// UTF8 passes bytes through unchanged
var UTF8 = &Codec{name: "UTF-8"}

// LookupCodec returns the codec of an IANA encoding name such as "UTF-8",
// "ISO-8859-1" or "windows-1252"
func LookupCodec(name string) (*Codec, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigurationErrorCode, "unknown encoding '"+name+"'", err).
			WithSuggestion("Use an IANA character set name such as UTF-8 or ISO-8859-1")
	}
	if enc == nil {
		return nil, errors.ConfigurationError("encoding", "unsupported character set "+name)
	}
	if canonical, _ := ianaindex.IANA.Name(enc); enc == unicode.UTF8 || canonical == "UTF-8" {
		return &Codec{name: name}, nil
	}

	return &Codec{name: name, encoding: enc}, nil
}

// Name returns the encoding name the codec was looked up with
func (c *Codec) Name() string {
	return c.name
}

// Decode converts raw file content to text
func (c *Codec) Decode(path string, data []byte) (string, error) {
	if c.encoding == nil {
		return string(data), nil
	}

	text, err := c.encoding.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.WrapEncodingError(c.name, path, err)
	}
	return string(text), nil
}

// Encode converts text back to raw file content
func (c *Codec) Encode(path string, text string) ([]byte, error) {
	if c.encoding == nil {
		return []byte(text), nil
	}

	data, err := c.encoding.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, errors.WrapEncodingError(c.name, path, err)
	}
	return data, nil
}
