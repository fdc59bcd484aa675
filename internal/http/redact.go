package http

import (
	"encoding/json"

	"github.com/voctra-ai/easy-appointments-client/internal/constants"
)

// sensitiveFields are matched exactly and case-sensitively against object
// keys when request bodies are logged.
var sensitiveFields = map[string]struct{}{
	"password": {},
	"token":    {},
	"secret":   {},
	"key":      {},
	"api_key":  {},
}

// redactBody returns a loggable copy of a JSON request body with sensitive
// field values replaced by a fixed mask. Objects are walked recursively so
// credentials nested in settings blocks are masked too. The original bytes
// are untouched; redaction applies to log output only.
func redactBody(body []byte) interface{} {
	var decoded interface{}

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		return string(body)
	}

	return redactValue(decoded)
}

func redactValue(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[string]interface{}:
		masked := make(map[string]interface{}, len(typed))

		for field, fieldValue := range typed {
			if _, sensitive := sensitiveFields[field]; sensitive && fieldValue != nil {
				masked[field] = constants.SensitiveMask
			} else {
				masked[field] = redactValue(fieldValue)
			}
		}

		return masked

	case []interface{}:
		masked := make([]interface{}, len(typed))
		for i, element := range typed {
			masked[i] = redactValue(element)
		}

		return masked

	default:
		return value
	}
}
