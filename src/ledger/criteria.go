package ledger

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format accepted by every date
// parameter on the transaction query endpoint.
const DateLayout = "2006-01-02"

// Criteria holds the normalized filter parameters of one transaction
// query. Every field is optional; nil means the caller did not supply
// the parameter. At most one filter family is honored per request,
// parameters outside the selected family are silently ignored.
type Criteria struct {
	TransactionID    *int64
	Description      *string
	StartDate        *time.Time
	EndDate          *time.Time
	IsExpense        *bool
	IsRecurring      *bool
	RecurringDate    *int
	AccountID        *int64
	CategoryID       *int64
	StartAmount      *decimal.Decimal
	EndAmount        *decimal.Decimal
	AmountComparison *string
}

// MalformedInputError reports a supplied parameter whose value could
// not be parsed. It maps to a 400 at the transport layer.
type MalformedInputError struct {
	Param string
	Value string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %q", e.Value, e.Param)
}

// ParseCriteria normalizes raw query parameters into Criteria. It does
// no cross-field validation; relevance of each parameter is decided by
// family selection and predicate compilation.
func ParseCriteria(values url.Values) (*Criteria, error) {
	c := &Criteria{}
	var err error

	if c.TransactionID, err = parseInt64Param(values, "transaction-id"); err != nil {
		return nil, err
	}
	if v := values.Get("description"); v != "" {
		c.Description = &v
	}
	if c.StartDate, err = parseDateParam(values, "start-date"); err != nil {
		return nil, err
	}
	if c.EndDate, err = parseDateParam(values, "end-date"); err != nil {
		return nil, err
	}
	if c.IsExpense, err = parseBoolParam(values, "is-expense"); err != nil {
		return nil, err
	}
	if c.IsRecurring, err = parseBoolParam(values, "is-recurring"); err != nil {
		return nil, err
	}
	if c.RecurringDate, err = parseIntParam(values, "recurring-date"); err != nil {
		return nil, err
	}
	if c.AccountID, err = parseInt64Param(values, "account-id"); err != nil {
		return nil, err
	}
	if c.CategoryID, err = parseInt64Param(values, "category-id"); err != nil {
		return nil, err
	}
	if c.StartAmount, err = parseAmountParam(values, "start-amount"); err != nil {
		return nil, err
	}
	if c.EndAmount, err = parseAmountParam(values, "end-amount"); err != nil {
		return nil, err
	}
	if v := values.Get("amount-comparison"); v != "" {
		c.AmountComparison = &v
	}
	return c, nil
}

func parseInt64Param(values url.Values, name string) (*int64, error) {
	v := values.Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, &MalformedInputError{Param: name, Value: v}
	}
	return &n, nil
}

func parseIntParam(values url.Values, name string) (*int, error) {
	v := values.Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, &MalformedInputError{Param: name, Value: v}
	}
	return &n, nil
}

func parseBoolParam(values url.Values, name string) (*bool, error) {
	v := values.Get(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, &MalformedInputError{Param: name, Value: v}
	}
	return &b, nil
}

func parseDateParam(values url.Values, name string) (*time.Time, error) {
	v := values.Get(name)
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		return nil, &MalformedInputError{Param: name, Value: v}
	}
	return &d, nil
}

func parseAmountParam(values url.Values, name string) (*decimal.Decimal, error) {
	v := values.Get(name)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, &MalformedInputError{Param: name, Value: v}
	}
	return &d, nil
}
