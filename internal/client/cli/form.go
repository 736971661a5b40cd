package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/casekeeper/internal/client/forms"
)

var errNoID = errors.New("no case id given")

var fieldLabels = map[string]string{
	forms.FieldTitle:          "Title",
	forms.FieldHost:           "Host",
	forms.FieldURI:            "URI",
	forms.FieldMethod:         "Method",
	forms.FieldRequestBody:    "Request Body",
	forms.FieldExpectedResult: "Expected Result",
	"email":                   "Email",
	"name":                    "Name",
	"password":                "Password",
	"passwordConfirm":         "Confirm password",
}

const (
	// clearValue typed as an answer empties a pre-filled field.
	clearValue = "-"
	// rawValue starts verbatim input, see GetRawText.
	rawValue = "<<"
)

// freeText fields take arbitrary text, so their prompts mention raw input.
var freeText = map[string]bool{
	forms.FieldRequestBody:    true,
	forms.FieldExpectedResult: true,
}

// fillCaseForm prompts for every case field. A pre-filled value is shown in
// brackets and kept on an empty answer. Plain answers are single trimmed
// lines; '<<' switches any field to raw input for values that are exactly
// "-", carry surrounding whitespace or span several lines.
func (a *App) fillCaseForm(d *forms.CaseDraft) error {
	for _, f := range forms.CaseFields {
		prompt := fieldLabels[f]
		if cur := d.Get(f); cur != "" {
			prompt = fmt.Sprintf("%s [%s] (Enter keeps, '%s' clears)", prompt, truncate(cur, titleLimit), clearValue)
		}
		if freeText[f] {
			prompt += fmt.Sprintf(" ('%s' for raw input)", rawValue)
		}
		v, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		switch v {
		case "":
		case clearValue:
			d.Set(f, "")
		case rawValue:
			raw, err := GetRawText(a.reader, a.out)
			if err != nil {
				return err
			}
			d.Set(f, raw)
		default:
			d.Set(f, v)
		}
	}
	return nil
}

// printFieldErrors prints validation messages under their field names in
// form order.
func (a *App) printFieldErrors(order []string, errs forms.FieldErrors) {
	for _, f := range order {
		if msg, ok := errs[f]; ok {
			fmt.Fprintf(a.out, "  %s: %s\n", fieldLabels[f], msg)
		}
	}
}

func (a *App) askID(id, prompt string) (string, error) {
	if id != "" {
		return id, nil
	}
	id, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		fmt.Fprintln(a.out, "No id given.")
		return "", errNoID
	}
	return id, nil
}
