package config

import (
	"time"

	"github.com/cockroachdb/errors"
)

// Duration is time.Duration encoded as a string, such as "30s"
type Duration time.Duration

// UnmarshalText parses the duration, a plain number is seconds
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		secs, err2 := time.ParseDuration(s + "s")
		if err2 != nil {
			return errors.Errorf("invalid duration: %q", s)
		}
		v = secs
	}
	*d = Duration(v)
	return nil
}

// MarshalText renders the duration
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
