package paper

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FieldWidth is the number of characters a number occupies on paper.
const FieldWidth = 10

// Epsilon is the tolerance of Equal comparisons. It is the single precision
// machine epsilon even though arithmetic is done in double precision.
const Epsilon = 0x1p-23

// Value is anything a Write instruction can put on paper.
type Value interface {
	Chars() ([]rune, error)
	fmt.Stringer
}

type Number float64

var _ Value = Number(0)

// Chars drops fractional digits until the number fits in a field. Only an
// integer part wider than FieldWidth overflows.
func (n Number) Chars() ([]rune, error) {
	f := float64(n)
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if len(s) <= FieldWidth {
		return formatField(s)
	}
	intLen := strings.IndexByte(s, '.')
	if intLen < 0 || intLen > FieldWidth {
		return formatField(s)
	}
	for prec := max(FieldWidth-intLen-1, 0); prec >= 0; prec-- {
		t := trimFraction(strconv.FormatFloat(f, 'f', prec, 64))
		if len(t) <= FieldWidth {
			return formatField(t)
		}
	}
	return formatField(s)
}

func trimFraction(s string) string {
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

type Int int64

var _ Value = Int(0)

func (i Int) Chars() ([]rune, error) {
	return formatField(strconv.FormatInt(int64(i), 10))
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Text is written character by character.
type Text string

var _ Value = Text("")

func (t Text) Chars() ([]rune, error) {
	return []rune(string(t)), nil
}

func (t Text) String() string {
	return string(t)
}

// Runes is a raw character sequence, as produced by Read.
type Runes []rune

var _ Value = Runes(nil)

func (r Runes) Chars() ([]rune, error) {
	return []rune(r), nil
}

func (r Runes) String() string {
	return string(r)
}

func formatField(s string) ([]rune, error) {
	if len(s) > FieldWidth {
		return nil, &ConversionError{
			Text:   s,
			Target: "field",
			Err:    ErrFieldOverflow,
		}
	}
	return []rune(strings.Repeat(" ", FieldWidth-len(s)) + s), nil
}

// numericText extracts the trimmed content of a numeric field.
func numericText(chars []rune, target string) (string, error) {
	s := strings.TrimSpace(string(chars))
	if s == "" {
		return "", &ConversionError{
			Text:   string(chars),
			Target: target,
			Err:    ErrEmptyField,
		}
	}
	if len([]rune(s)) > FieldWidth {
		return "", &ConversionError{
			Text:   string(chars),
			Target: target,
			Err:    ErrFieldOverflow,
		}
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", &ConversionError{
			Text:   string(chars),
			Target: target,
			Err:    ErrMalformedField,
		}
	}
	return s, nil
}

func ParseFloat(chars []rune) (float64, error) {
	s, err := numericText(chars, "float64")
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ConversionError{
			Text:   string(chars),
			Target: "float64",
			Err:    err,
		}
	}
	return f, nil
}

func ParseInt(chars []rune) (int64, error) {
	s, err := numericText(chars, "int64")
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ConversionError{
			Text:   string(chars),
			Target: "int64",
			Err:    err,
		}
	}
	return i, nil
}

// Scalar lists the types characters can be converted into.
type Scalar interface {
	int64 | float64 | string | []rune
}

func FromChars[T Scalar](chars []rune) (ret T, err error) {
	switch p := any(&ret).(type) {
	case *int64:
		*p, err = ParseInt(chars)
	case *float64:
		*p, err = ParseFloat(chars)
	case *string:
		*p = string(chars)
	case *[]rune:
		*p = append([]rune(nil), chars...)
	}
	return
}
