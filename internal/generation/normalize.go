package generation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/scry-relay/internal/domain"
)

// Request defaults and bounds.
const (
	DefaultCount       = 5
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
	MaxPromptLength    = 4000

	countRule       = "min=1,max=100"
	maxTokensRule   = "min=1,max=4000"
	temperatureRule = "min=0,max=2"
	promptRule      = "max=4000"
)

// Client-facing validation messages.
const (
	msgNotJSON       = "Request must be JSON"
	msgEmptyPrompt   = "Prompt is required and cannot be empty"
	msgInvalidCount  = "Count must be an integer between 1 and 100"
	msgPromptTooLong = "Prompt too long (max 4000 characters)"
)

// Normalizer turns an inbound request body into a GenerationRequest.
//
// prompt and count problems fail the request. model, max_tokens and
// temperature never do: invalid values are replaced by defaults.
type Normalizer struct {
	catalog  *Catalog
	validate *validator.Validate
}

// NewNormalizer creates a Normalizer that allows the models in catalog.
func NewNormalizer(catalog *Catalog) *Normalizer {
	return &Normalizer{
		catalog:  catalog,
		validate: validator.New(),
	}
}

// Normalize validates body and returns the defaulted request. Validation
// failures are returned as *domain.ValidationError.
func (n *Normalizer) Normalize(body []byte) (domain.GenerationRequest, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return domain.GenerationRequest{}, domain.NewValidationError(domain.CodeNotJSON, msgNotJSON)
	}

	topic, _ := fields["prompt"].(string)
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return domain.GenerationRequest{}, domain.NewValidationError(domain.CodeEmptyPrompt, msgEmptyPrompt)
	}

	count := DefaultCount
	if raw, present := fields["count"]; present && raw != nil {
		value, ok := integer(raw)
		if !ok || n.validate.Var(value, countRule) != nil {
			return domain.GenerationRequest{}, domain.NewValidationError(domain.CodeInvalidCount, msgInvalidCount)
		}
		count = int(value)
	}

	model, _ := fields["model"].(string)
	model = n.catalog.Resolve(model)

	maxTokens := DefaultMaxTokens
	if value, ok := integer(fields["max_tokens"]); ok && n.validate.Var(value, maxTokensRule) == nil {
		maxTokens = int(value)
	}

	temperature := DefaultTemperature
	if value, ok := number(fields["temperature"]); ok && n.validate.Var(value, temperatureRule) == nil {
		temperature = value
	}

	prompt := BuildPrompt(count, topic)
	if n.validate.Var(prompt, promptRule) != nil {
		return domain.GenerationRequest{}, domain.NewValidationError(domain.CodePromptTooLong, msgPromptTooLong)
	}

	req := domain.GenerationRequest{
		Prompt:      prompt,
		Topic:       topic,
		Count:       count,
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	if err := n.validate.Struct(req); err != nil {
		return domain.GenerationRequest{}, fmt.Errorf("normalized request failed validation: %w", err)
	}

	return req, nil
}

// decodeObject decodes body as a single JSON object, keeping numbers as
// json.Number so integers and floats can be told apart.
func decodeObject(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("body is not a JSON object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	return fields, nil
}

// integer accepts JSON integer literals only; 5.0, "5" and true are rejected.
// The value stays int64 so bounds are checked before narrowing to int.
func integer(v any) (int64, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := num.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

func number(v any) (float64, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := num.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}
