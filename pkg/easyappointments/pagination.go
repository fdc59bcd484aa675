package easyappointments

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
)

// Page is the uniform shape every list operation resolves to, regardless of
// whether the server answered with a bare JSON array or a pagination
// envelope. Items keep the server's order. Next and Previous are opaque
// server-controlled cursors; the client never interprets them.
type Page[T any] struct {
	Items    []T     `json:"items"              yaml:"items"`
	Total    int     `json:"total"              yaml:"total"`
	Next     *string `json:"next,omitempty"     yaml:"next,omitempty"`
	Previous *string `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// pageEnvelope is the enveloped wire shape: {"results": [...], "total": N,
// "next": ..., "previous": ...}.
type pageEnvelope struct {
	Results  []json.RawMessage `json:"results"`
	Total    *int              `json:"total"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
}

// DecodePage normalizes a raw list payload into a Page.
//
// A bare array yields a degraded-but-valid page: Total is the number of
// decoded elements and both cursors are absent. An envelope object passes
// total/next/previous through, with Total defaulting to the decoded count.
// A null, empty, or unrecognized payload yields an empty page rather than
// an error. Elements that fail to decode are skipped with a logged warning
// so one malformed record cannot hide the rest of a legitimate page.
//
// DecodePage is a pure function of its input: calling it twice on the same
// payload yields structurally equal pages.
func DecodePage[T any](raw []byte, logger Logger) Page[T] {
	page := Page[T]{Items: []T{}}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return page
	}

	switch trimmed[0] {
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return page
		}

		page.Items = decodeElements[T](elements, logger)
		page.Total = len(page.Items)

	case '{':
		var envelope pageEnvelope
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return page
		}

		page.Items = decodeElements[T](envelope.Results, logger)
		page.Next = envelope.Next
		page.Previous = envelope.Previous

		if envelope.Total != nil {
			page.Total = *envelope.Total
		} else {
			page.Total = len(page.Items)
		}
	}

	return page
}

func decodeElements[T any](elements []json.RawMessage, logger Logger) []T {
	items := make([]T, 0, len(elements))

	for index, element := range elements {
		var item T

		err := json.Unmarshal(element, &item)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping undecodable list element", map[string]interface{}{
					"index": index,
					"error": err.Error(),
				})
			}

			continue
		}

		items = append(items, item)
	}

	return items
}

// List option defaults, matching the server's own.
const (
	DefaultPage   = 1
	DefaultLength = 10
	DefaultSort   = "-id"
	MaxLength     = 100
)

// ListOptions holds the common query parameters accepted by every list
// endpoint. Sort takes a field name, prefixed with "-" for descending
// order.
type ListOptions struct {
	Page   int
	Length int
	Sort   string
}

// NewListOptions returns options with the server defaults applied.
func NewListOptions() *ListOptions {
	return &ListOptions{Page: DefaultPage, Length: DefaultLength, Sort: DefaultSort}
}

// ToValues converts the options to URL query values. Page is floored at 1
// and Length clamped to 1..100; zero values are filled with defaults.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	page := o.Page
	if page < 1 {
		page = DefaultPage
	}

	length := o.Length
	if length < 1 {
		length = DefaultLength
	}

	if length > MaxLength {
		length = MaxLength
	}

	sortOrder := o.Sort
	if sortOrder == "" {
		sortOrder = DefaultSort
	}

	values.Set("page", strconv.Itoa(page))
	values.Set("length", strconv.Itoa(length))
	values.Set("sort", sortOrder)

	return values
}
