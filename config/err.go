package config

import "github.com/AbdelrahmanBedoo/z16sim/translate"

var f = translate.From

// ErrConfig reports a failure to decode a configuration file.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config: %s: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
