package io

import (
	"errors"

	"github.com/ezrec/regasm/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleClosed = errors.New(f("IO error. Did you close stdin?"))
)
