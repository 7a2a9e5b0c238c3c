package grade

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownCategory is returned for categories other than Formative and Summative.
var ErrUnknownCategory = errors.New("unknown assignment category")

// Category is the kind of graded work an Assignment belongs to.
type Category int

const (
	Formative Category = iota + 1
	Summative
)

// Categories lists all valid categories.
var Categories = []Category{Formative, Summative}

// ParseCategory is case-insensitive and ignores surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "formative":
		return Formative, nil
	case "summative":
		return Summative, nil
	}
	return 0, errors.Wrapf(ErrUnknownCategory, "%q", s)
}

func (c Category) Valid() bool {
	return c == Formative || c == Summative
}

func (c Category) String() string {
	switch c {
	case Formative:
		return "Formative"
	case Summative:
		return "Summative"
	}
	return "Unknown"
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrUnknownCategory
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	cat, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = cat
	return nil
}
