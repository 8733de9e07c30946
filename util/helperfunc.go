package util

import (
	"fmt"
	"io"
	"strings"
)

const (
	// ContactLength is the exact number of digits in a contact number.
	ContactLength = 10
	DateLayout    = "2006-01-02"
	TimeLayout    = "15:04"
)

type ErrorParams struct {
	Msg string
	Err error
}

// CallSuccess prints a success line for a finished record operation.
func CallSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s\n", msg)
}

// CallUserError prints a rejected-input line. The operation ends without touching the store.
func CallUserError(w io.Writer, params ErrorParams) {
	if params.Err != nil {
		logger.WithError(params.Err).Warn(params.Msg)
	}
	fmt.Fprintln(w, params.Msg)
}

// CallNotFound prints the line for a record id that is not in the store.
func CallNotFound(w io.Writer, params ErrorParams) {
	if params.Err != nil {
		logger.WithError(params.Err).Info(params.Msg)
	}
	fmt.Fprintln(w, params.Msg)
}

// CallServerError writes a store-layer failure to the error channel and logs it.
func CallServerError(w io.Writer, params ErrorParams) {
	logger.WithError(params.Err).Error(params.Msg)
	if params.Err == nil {
		fmt.Fprintln(w, params.Msg)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", params.Msg, params.Err)
}

// NormalizeName normalizes a name by trimming leading/trailing whitespace
// and collapsing multiple internal spaces into single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// NormalizeUpper normalizes like NormalizeName and upper-cases the result, the
// stored form of names, addresses and specializations.
func NormalizeUpper(s string) string {
	return strings.ToUpper(NormalizeName(s))
}
