package playstore

import (
	"fmt"
	"maps"
	"net/http"
	"reflect"
	"strconv"

	"dario.cat/mergo"
)

const (
	siteOrigin = "https://play.google.com"
	reviewsUrl = siteOrigin + "/store/getreviews"
	userAgent  = "Mozilla/5.0 (Windows NT 6.3; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/38.0.2125.111 Safari/537.36"
)

// Request is a fully specified description of the HTTP request a Transport
// should make.
type Request struct {
	Method  string
	Url     string
	Form    map[string]string
	Headers map[string]string
	// Json indicates that the caller expects a json response.
	Json            bool
	FollowRedirects bool
}

// RequestOverrides replace parts of the default request. Every field that is
// set replaces the default field as a whole, a Form map for example replaces
// the whole default form rather than being merged into it.
type RequestOverrides struct {
	Method          string
	Url             string
	Form            map[string]string
	Headers         map[string]string
	Json            *bool
	FollowRedirects *bool
}

var (
	stringMapType = reflect.TypeOf(map[string]string{})
	boolPtrType   = reflect.TypeOf((*bool)(nil))
)

// replaceTransformer makes mergo replace maps and pointers instead of merging
// into them.
type replaceTransformer struct{}

func (replaceTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != stringMapType && typ != boolPtrType {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if !src.IsNil() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

func boolPtr(b bool) *bool {
	return &b
}

// buildRequest creates the request for a validated query. It does no I/O.
func buildRequest(query ReviewQuery) (Request, error) {
	lang := query.Lang
	if lang == "" {
		lang = "en"
	}

	merged := RequestOverrides{
		Method: http.MethodPost,
		Url:    reviewsUrl,
		Form: map[string]string{
			"pageNum":         strconv.Itoa(query.Page),
			"id":              query.AppId,
			"reviewSortOrder": strconv.Itoa(int(query.Sort)),
			"hl":              lang,
			"reviewType":      "0",
			"xhr":             "1",
		},
		Headers: map[string]string{
			"User-Agent": userAgent,
		},
		Json:            boolPtr(true),
		FollowRedirects: boolPtr(true),
	}

	if query.Overrides != nil {
		err := mergo.Merge(
			&merged,
			*query.Overrides,
			mergo.WithOverride,
			mergo.WithTransformers(replaceTransformer{}),
		)
		if err != nil {
			return Request{}, fmt.Errorf("%w: merge request overrides: %w", ErrInvalidInput, err)
		}
	}

	return Request{
		Method:          merged.Method,
		Url:             merged.Url,
		Form:            maps.Clone(merged.Form),
		Headers:         maps.Clone(merged.Headers),
		Json:            *merged.Json,
		FollowRedirects: *merged.FollowRedirects,
	}, nil
}
