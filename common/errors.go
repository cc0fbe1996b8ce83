package common

import (
	"errors"
	"fmt"
)

// NameNotFoundError is returned when a name doesn't resolve to any address or
// resolves to the zero address. It is the only failure that aborts a whole
// profile lookup; every other provider failure degrades to an absent field.
type NameNotFoundError struct {
	Name string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("name not found: %s", e.Name)
}

// IsNameNotFound reports whether err (or anything it wraps) is a
// NameNotFoundError.
func IsNameNotFound(err error) bool {
	var target *NameNotFoundError
	return errors.As(err, &target)
}

// ErrNotConfigured marks a capability that was never attempted because its
// credential or endpoint is missing. Callers must be able to tell this apart
// from a provider that was called and failed.
var ErrNotConfigured = errors.New("provider not configured")

// SourceStatus records how a single data source ended up for one lookup.
type SourceStatus uint8

const (
	SourceOK            SourceStatus = iota // call succeeded, field populated
	SourceUnavailable                       // transport/timeout/non-2xx, field absent
	SourceNotConfigured                     // capability disabled, call never made
)

func (s SourceStatus) String() string {
	switch s {
	case SourceOK:
		return "ok"
	case SourceUnavailable:
		return "unavailable"
	case SourceNotConfigured:
		return "not configured"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Source names one of the independent data sources a profile is merged from.
type Source string

const (
	SourceBalance     Source = "balance"
	SourcePrice       Source = "price"
	SourceActivity    Source = "activity"
	SourceHoldings    Source = "holdings"
	SourceTextRecords Source = "text records"
	SourceNametag     Source = "nametag"
)

// SourceResult is the per-source outcome attached to a Profile. Err is nil
// unless Status is SourceUnavailable.
type SourceResult struct {
	Status SourceStatus
	Err    error
}
