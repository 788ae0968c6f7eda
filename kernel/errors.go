package kernel

import (
	"errors"
	"fmt"
)

// Errors returned by kernel construction and the generators.
var (
	ErrInvalidDims   = errors.New("kernel: width and height must be > 0")
	ErrWeightsLength = errors.New("kernel: weights length must equal width*height")
	ErrEvenSize      = errors.New("kernel: size must be odd")
	ErrInvalidSigma  = errors.New("kernel: sigma must be > 0")
)

func validateOddSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDims, size)
	}
	if size%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrEvenSize, size)
	}
	return nil
}

func validateGaussian(size int, sigma float64) error {
	if err := validateOddSize(size); err != nil {
		return err
	}
	if sigma <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidSigma, sigma)
	}
	return nil
}
