package model

import (
	"time"

	"github.com/pkg/errors"
)

// Duration is a TOML friendly time.Duration ("10s", "1m30s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalTOML(v interface{}) error {
	switch val := v.(type) {
	case string:
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return errors.Wrapf(err, "failed to parse duration %q", val)
		}
		d.Duration = parsed
		return nil
	case int64:
		d.Duration = time.Duration(val) * time.Second
		return nil
	}

	return errors.Errorf("unsupported duration value %v", v)
}
