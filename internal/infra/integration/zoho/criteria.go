package zoho

import (
	"fmt"
	"strings"
	"time"
)

// The CRM's search endpoint takes a textual filter expression, e.g.
// ((Full_Address:equals:"x") or (Mobile:equals:"y")) and
// (Meeting_Time:between:2024-06-06T00:00:00-04:00,2024-06-10T23:59:59-04:00).
// Expressions are built as typed nodes and rendered once, so the grammar can
// be unit-tested away from HTTP.

const stampLayout = "2006-01-02T15:04:05-07:00"

type Expr interface {
	Render() string
}

type Equals struct {
	Field string
	Value string
}

func (e Equals) Render() string {
	return fmt.Sprintf("(%s:equals:%q)", e.Field, e.Value)
}

type Between struct {
	Field string
	From  time.Time
	To    time.Time
}

func (b Between) Render() string {
	return fmt.Sprintf("(%s:between:%s,%s)", b.Field, b.From.Format(stampLayout), b.To.Format(stampLayout))
}

// Or renders its operands joined by " or ", always parenthesized.
type Or []Expr

func (o Or) Render() string {
	parts := make([]string, len(o))
	for i, e := range o {
		parts[i] = e.Render()
	}
	return "(" + strings.Join(parts, " or ") + ")"
}

// And renders its operands joined by " and ", without outer parentheses.
type And []Expr

func (a And) Render() string {
	parts := make([]string, len(a))
	for i, e := range a {
		parts[i] = e.Render()
	}
	return strings.Join(parts, " and ")
}

// DuplicateCriteria builds the duplicate-booking filter: the OR of whichever
// identity fields are present, ANDed with a Meeting_Time window running from
// midnight four calendar days before date through the end of date itself.
// The same person may book twice with slightly different contact details, so
// the window clause stands on its own when no identity field is given.
func DuplicateCriteria(address, phone, email string, date time.Time, loc *time.Location) string {
	var idents []Expr
	if address != "" {
		idents = append(idents, Equals{Field: "Full_Address", Value: address})
	}
	if phone != "" {
		idents = append(idents, Equals{Field: "Mobile", Value: phone})
	}
	if email != "" {
		idents = append(idents, Equals{Field: "Email", Value: email})
	}

	day := date.In(loc)
	window := Between{
		Field: "Meeting_Time",
		From:  time.Date(day.Year(), day.Month(), day.Day()-4, 0, 0, 0, 0, loc),
		To:    time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, loc),
	}

	if len(idents) == 0 {
		return window.Render()
	}
	return And{Or(idents), window}.Render()
}
