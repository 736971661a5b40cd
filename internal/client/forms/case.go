package forms

import "github.com/dmitrijs2005/casekeeper/internal/client/models"

const (
	FieldTitle          = "title"
	FieldHost           = "host"
	FieldURI            = "uri"
	FieldMethod         = "method"
	FieldRequestBody    = "request_body"
	FieldExpectedResult = "expected_result"
)

// CaseFields lists the case form fields in display order.
var CaseFields = []string{FieldTitle, FieldHost, FieldURI, FieldMethod, FieldRequestBody, FieldExpectedResult}

// CaseDraft is unvalidated create/update input.
type CaseDraft struct {
	Title          string
	Host           string
	URI            string
	Method         string
	RequestBody    string
	ExpectedResult string
}

// DraftFromCase pre-populates an update form from an existing case.
func DraftFromCase(c models.Case) CaseDraft {
	return CaseDraft{
		Title:          c.Title,
		Host:           c.Host,
		URI:            c.URI,
		Method:         c.Method,
		RequestBody:    c.RequestBody,
		ExpectedResult: c.ExpectedResult,
	}
}

// Get returns the draft value of a field by its name.
func (d CaseDraft) Get(field string) string {
	switch field {
	case FieldTitle:
		return d.Title
	case FieldHost:
		return d.Host
	case FieldURI:
		return d.URI
	case FieldMethod:
		return d.Method
	case FieldRequestBody:
		return d.RequestBody
	case FieldExpectedResult:
		return d.ExpectedResult
	}
	return ""
}

// Set assigns a field by name; unknown names are ignored.
func (d *CaseDraft) Set(field, value string) {
	switch field {
	case FieldTitle:
		d.Title = value
	case FieldHost:
		d.Host = value
	case FieldURI:
		d.URI = value
	case FieldMethod:
		d.Method = value
	case FieldRequestBody:
		d.RequestBody = value
	case FieldExpectedResult:
		d.ExpectedResult = value
	}
}

// ValidateCase applies the create/update schema: title, host, uri and method
// are required; request body and expected result are free text. Values are
// sent exactly as typed.
func ValidateCase(d CaseDraft) Result[models.CaseInput] {
	errs := make(FieldErrors)

	var in models.CaseInput
	in.Title = nonBlank(errs, FieldTitle, d.Title, "Title is required")
	in.Host = nonBlank(errs, FieldHost, d.Host, "Host is required")
	in.URI = nonBlank(errs, FieldURI, d.URI, "URI is required")
	in.Method = nonBlank(errs, FieldMethod, d.Method, "Method is required")
	in.RequestBody = d.RequestBody
	in.ExpectedResult = d.ExpectedResult

	if len(errs) > 0 {
		return invalid[models.CaseInput](errs)
	}
	return valid(in)
}
