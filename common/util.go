package common

import (
	"errors"
	"sync"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// ZeroAddress is how a resolver reports "no address". A name resolving to it
// is treated as not found, never as a usable address.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// IsAddress returns true when addr is a well-formed 20-byte hex address.
func IsAddress(addr string) bool {
	return ethcommon.IsHexAddress(addr)
}

// IsZeroAddress returns true when addr is well-formed but all zero.
func IsZeroAddress(addr string) bool {
	return ethcommon.IsHexAddress(addr) && ethcommon.HexToAddress(addr) == (ethcommon.Address{})
}

// ChecksumAddress normalizes addr to its EIP-55 mixed-case form.
func ChecksumAddress(addr string) string {
	return ethcommon.HexToAddress(addr).Hex()
}

// RunParallel takes multiple functions that each return an error,
// runs them in parallel using goroutines, then aggregates any
// errors using errors.Join (Go 1.20+).
func RunParallel(funcs ...func() error) (error, int) {
	var wg sync.WaitGroup
	errs := make(chan error, len(funcs)) // buffered channel

	for _, fn := range funcs {
		wg.Add(1)
		go func(fn func() error) {
			defer wg.Done()
			err := fn()
			if err != nil {
				errs <- err
			}
		}(fn)
	}

	// Wait for all goroutines to finish
	wg.Wait()
	close(errs)

	// Collect all errors
	var allErrs []error
	for err := range errs {
		allErrs = append(allErrs, err)
	}

	// If there are no errors, errors.Join returns nil
	return errors.Join(allErrs...), len(allErrs)
}
