package errs

import (
	"errors"
	"strings"
)

// Kind classifies an expected domain failure. Anything that is not a Problem
// is an infrastructure failure.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Detail is a single failure entry. Field is a flat path such as
// "sections[1].items[0].price.amount"; empty when the failure is not tied to a field.
type Detail struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDetail(field, code, message string) Detail {
	return Detail{Field: field, Code: code, Message: message}
}

type Problem struct {
	Kind    Kind
	Details []Detail
}

func Validation(details ...Detail) *Problem {
	return &Problem{Kind: KindValidation, Details: details}
}

func Conflict(code, message string) *Problem {
	return &Problem{Kind: KindConflict, Details: []Detail{{Code: code, Message: message}}}
}

func NotFound(code, message string) *Problem {
	return &Problem{Kind: KindNotFound, Details: []Detail{{Code: code, Message: message}}}
}

func (p *Problem) Error() string {
	var b strings.Builder
	b.WriteString(string(p.Kind))
	for i, d := range p.Details {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		if d.Field != "" {
			b.WriteString(d.Field)
			b.WriteString(": ")
		}
		b.WriteString(d.Message)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrConflict) and friends match on kind.
func (p *Problem) Is(target error) bool {
	switch target {
	case ErrValidation:
		return p.Kind == KindValidation
	case ErrConflict:
		return p.Kind == KindConflict
	case ErrNotFound:
		return p.Kind == KindNotFound
	default:
		return false
	}
}

// HasCode reports whether any detail carries code.
func (p *Problem) HasCode(code string) bool {
	for _, d := range p.Details {
		if d.Code == code {
			return true
		}
	}
	return false
}

func AsProblem(err error) (*Problem, bool) {
	var p *Problem
	if errors.As(err, &p) {
		return p, true
	}
	return nil, false
}

// KindOf returns "" for nil and for errors that are not Problems.
func KindOf(err error) Kind {
	if p, ok := AsProblem(err); ok {
		return p.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func DetailsOf(err error) []Detail {
	if p, ok := AsProblem(err); ok {
		return p.Details
	}
	return nil
}

// JoinPath appends field to prefix, keeping index segments attached: ("items", "[0].name") -> "items[0].name".
func JoinPath(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	case strings.HasPrefix(field, "["):
		return prefix + field
	default:
		return prefix + "." + field
	}
}

// Collector accumulates details across independent checks so a single call
// reports every failure it found.
type Collector struct {
	details []Detail
}

func (c *Collector) Add(field, code, message string) {
	c.details = append(c.details, Detail{Field: field, Code: code, Message: message})
}

func (c *Collector) Append(details ...Detail) {
	c.details = append(c.details, details...)
}

// Merge re-roots the details of err under prefix. A non-Problem error is kept
// as a single detail so it is not lost.
func (c *Collector) Merge(prefix string, err error) {
	if err == nil {
		return
	}
	p, ok := AsProblem(err)
	if !ok {
		c.Add(prefix, "invalid", err.Error())
		return
	}
	for _, d := range p.Details {
		d.Field = JoinPath(prefix, d.Field)
		c.details = append(c.details, d)
	}
}

func (c *Collector) Empty() bool {
	return len(c.details) == 0
}

func (c *Collector) Details() []Detail {
	return c.details
}

// Err returns nil when nothing was collected.
func (c *Collector) Err() error {
	if len(c.details) == 0 {
		return nil
	}
	return Validation(c.details...)
}
