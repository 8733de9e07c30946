package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ariebrainware/clinic-desk/model"
	"github.com/ariebrainware/clinic-desk/util"
)

var (
	// ErrEmptyField aborts an entry flow when a required text field is left empty.
	ErrEmptyField = errors.New("required field is empty")
	// ErrInvalidID is returned when a record id is not a positive number.
	ErrInvalidID = errors.New("invalid record id")
)

// LookupError is a store failure raised while checking that a typed id exists.
type LookupError struct {
	Label string
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("look up %s: %v", strings.ToLower(e.Label), e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

var genders = []string{model.GenderMale, model.GenderFemale, model.GenderOther}

// Collector prompts for field values on one interactive input stream. Every
// numeric and code field loops until a valid value is typed; there is no retry limit.
type Collector struct {
	r   *bufio.Reader
	out io.Writer
}

// NewCollector returns a collector reading lines from in and writing prompts to out.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{r: bufio.NewReader(in), out: out}
}

// Line prints prompt and reads one line without its terminator. A final line
// without a newline is returned; io.EOF is returned only when nothing was read.
func (c *Collector) Line(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Choice reads a menu selection.
func (c *Collector) Choice(prompt string) (string, error) {
	line, err := c.Line(prompt)
	return strings.TrimSpace(line), err
}

// RequiredText reads a normalised, upper-cased text value. An empty value
// prints "<label> cannot be empty." and returns ErrEmptyField.
func (c *Collector) RequiredText(prompt, label string) (string, error) {
	value, err := c.RequiredString(prompt, label)
	return util.NormalizeUpper(value), err
}

// RequiredString is RequiredText without the upper-casing; the value keeps the
// case it was typed in.
func (c *Collector) RequiredString(prompt, label string) (string, error) {
	line, err := c.Line(prompt)
	if err != nil {
		return "", err
	}
	value := util.NormalizeName(line)
	if value == "" {
		fmt.Fprintf(c.out, "%s cannot be empty.\n", label)
		return "", ErrEmptyField
	}
	return value, nil
}

// OptionalText reads a whitespace-normalised value that may be empty.
func (c *Collector) OptionalText(prompt string) (string, error) {
	line, err := c.Line(prompt)
	if err != nil {
		return "", err
	}
	return util.NormalizeName(line), nil
}

// PositiveInt loops until a whole number greater than zero is typed.
func (c *Collector) PositiveInt(prompt, label string) (int, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}
		if !util.IsPositiveInt(n) {
			fmt.Fprintf(c.out, "%s must be a positive integer.\n", label)
			continue
		}
		return n, nil
	}
}

// PositiveFloat loops until a number greater than zero is typed.
func (c *Collector) PositiveFloat(prompt, label string) (float64, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}
		if !util.IsPositiveFloat(f) {
			fmt.Fprintf(c.out, "%s must be a positive number.\n", label)
			continue
		}
		return f, nil
	}
}

// Contact loops until exactly ten digits are typed.
func (c *Collector) Contact(prompt string) (string, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return "", err
		}
		if len(line) != util.ContactLength {
			fmt.Fprintf(c.out, "Contact must be exactly %d digits long.\n", util.ContactLength)
			continue
		}
		if !util.IsContactNumber(line) {
			fmt.Fprintln(c.out, "Contact must contain only digits.")
			continue
		}
		return line, nil
	}
}

// Gender loops until one of M, F or O is typed, in either case.
func (c *Collector) Gender(prompt string) (string, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return "", err
		}
		if g, ok := util.ParseGender(line, genders); ok {
			return g, nil
		}
		fmt.Fprintln(c.out, "Invalid input. Please enter M, F, or O only.")
	}
}

// Date loops until a calendar date in YYYY-MM-DD form is typed.
func (c *Collector) Date(prompt string) (string, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if util.IsDate(line) {
			return line, nil
		}
		fmt.Fprintln(c.out, "Invalid date. Please use the YYYY-MM-DD format.")
	}
}

// Time loops until a 24-hour time in HH:MM form is typed.
func (c *Collector) Time(prompt string) (string, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if util.IsTime(line) {
			return line, nil
		}
		fmt.Fprintln(c.out, "Invalid time. Please use the HH:MM format.")
	}
}

// ID reads a record id. Anything but a positive number returns ErrInvalidID.
func (c *Collector) ID(prompt string) (uint, error) {
	line, err := c.Line(prompt)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
	if err != nil || id == 0 {
		fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// ExistingID loops until the typed id satisfies exists. A store error ends the
// loop with a *LookupError.
func (c *Collector) ExistingID(prompt, label string, exists func(uint) (bool, error)) (uint, error) {
	for {
		id, err := c.ID(prompt)
		if errors.Is(err, ErrInvalidID) {
			continue
		}
		if err != nil {
			return 0, err
		}
		ok, err := exists(id)
		if err != nil {
			return 0, &LookupError{Label: label, Err: err}
		}
		if ok {
			return id, nil
		}
		fmt.Fprintf(c.out, "%s with ID %d does not exist. Please try again.\n", label, id)
	}
}

// Confirm loops until y or n is typed and reports whether it was y.
func (c *Collector) Confirm(prompt string) (bool, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(c.out, "Please enter y or n.")
	}
}
