package controllerImp

import (
	"encoding/json"
	"io"

	bizsvc "planner/pkg/business/service"
)

// decodeGenerateReq reads the generation body as JSON regardless of its
// Content-Type. A body that is not a JSON object is treated as {}.
func decodeGenerateReq(body io.Reader) bizsvc.ResolveRequest {
	var fields map[string]json.RawMessage
	if body == nil {
		return bizsvc.ResolveRequest{}
	}
	data, err := io.ReadAll(body)
	if err != nil || json.Unmarshal(data, &fields) != nil {
		return bizsvc.ResolveRequest{}
	}
	return bizsvc.ResolveRequest{
		BusinessID: businessID(fields["businessId"]),
		Name:       optionalText(fields["demoBusinessName"]),
		City:       optionalText(fields["city"]),
	}
}

// businessID returns "" for an absent or falsy id (null, "", 0, false), which
// means "create a business". Any other non-string value is passed on as its
// JSON text so the existence check rejects it.
func businessID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if !t {
			return ""
		}
	case float64:
		if t == 0 {
			return ""
		}
	}
	return string(raw)
}

// optionalText returns nil for an absent or null value. Strings are used
// as-is; other values keep their JSON text.
func optionalText(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return &s
	}
	s := string(raw)
	return &s
}
