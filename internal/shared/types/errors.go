package types

import "errors"

var (
	ErrNoInputFile        = errors.New("no input file specified. Use --input or set input_file in a config file")
	ErrInvalidTopN        = errors.New("top-n must be at least 1")
	ErrCatalogUnavailable = errors.New("product catalog service is unavailable")
)
