package translate

import (
	"context"
	"fmt"
)

// Translator is the boundary the pipeline depends on: one call translates an
// ordered batch of texts and returns one translation per input, same order.
type Translator interface {
	Translate(ctx context.Context, texts []string) ([]string, error)
}

// TranslateRequestItem is one element of the Azure Translator request body
type TranslateRequestItem struct {
	Text string `json:"Text"`
}

// Translation is one translated variant of an input item
type Translation struct {
	Text string `json:"text"`
	To   string `json:"to"`
}

// TranslateResponseItem is one element of the Azure Translator response body
type TranslateResponseItem struct {
	Translations []Translation `json:"translations"`
}

// APIError is the error envelope the service returns on failure
type APIError struct {
	StatusCode int
	Inner      struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("translator service error (HTTP %d, code %d): %s",
		e.StatusCode, e.Inner.Code, e.Inner.Message)
}
