// Package models defines the case records and auth payloads exchanged with
// the case management backend.
package models

import "time"

// Case is a stored HTTP test definition. ID is assigned by the backend and
// never changes; every other field is editable.
type Case struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Host           string    `json:"host"`
	URI            string    `json:"uri"`
	Method         string    `json:"method"`
	RequestBody    string    `json:"request_body"`
	ExpectedResult string    `json:"expected_result"`
	Category       string    `json:"category"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// URL joins host and uri the way the list view shows them.
func (c Case) URL() string {
	return c.Host + c.URI
}

// CaseInput is the create/update payload. It carries no id or timestamps.
type CaseInput struct {
	Title          string `json:"title"`
	Host           string `json:"host"`
	URI            string `json:"uri"`
	Method         string `json:"method"`
	RequestBody    string `json:"request_body"`
	ExpectedResult string `json:"expected_result"`
}

type CaseResponse struct {
	Status string `json:"status"`
	Case   Case   `json:"case"`
}

type CasesResponse struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Cases   []Case `json:"cases"`
}

// GenericResponse is the error body shape; detail is used by some backends
// instead of message.
type GenericResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}
