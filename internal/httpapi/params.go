package httpapi

import (
	"net/url"
	"strconv"

	"soundcrate/internal/app"
)

func parsePage(query url.Values) app.Page {
	return app.ParsePage(query.Get("limit"), query.Get("offset"))
}

// parseBoolFilter reads an optional boolean query parameter. Absent values
// return nil; malformed values are rejected before any store call.
func parseBoolFilter(query url.Values, key string) (*bool, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, app.BadRequest(app.MsgBadRequest)
	}
	return &v, nil
}

// parseIntFilter reads an optional integer query parameter. Absent values
// return nil; malformed values are rejected before any store call.
func parseIntFilter(query url.Values, key string) (*int, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, app.BadRequest(app.MsgBadRequest)
	}
	return &v, nil
}
