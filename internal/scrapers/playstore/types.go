package playstore

import (
	"fmt"
	"strings"
)

// Sort is the order the storefront returns reviews in, the values are the ones
// the endpoint expects in the `reviewSortOrder` form field.
type Sort int

const (
	SORT_NEWEST Sort = iota
	SORT_RATING
	SORT_HELPFULNESS
)

var sortNames = map[Sort]string{
	SORT_NEWEST:      "NEWEST",
	SORT_RATING:      "RATING",
	SORT_HELPFULNESS: "HELPFULNESS",
}

func (s Sort) String() string {
	name, ok := sortNames[s]
	if !ok {
		return fmt.Sprintf("Sort(%d)", int(s))
	}
	return name
}

// ParseSort parses a sort by name (case-insensitive).
func ParseSort(name string) (Sort, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for sort, sortName := range sortNames {
		if sortName == name {
			return sort, nil
		}
	}
	return 0, fmt.Errorf("%w: invalid sort %q", ErrInvalidInput, name)
}

// ReviewQuery describes a single page of reviews to fetch.
type ReviewQuery struct {
	AppId string `validate:"required"`
	// Page is zero-indexed.
	Page int  `validate:"min=0"`
	Sort Sort `validate:"min=0,max=2"`
	// Lang defaults to "en".
	Lang string

	// Throttle is forwarded to the Transport as is.
	Throttle *ThrottleConfig
	// Overrides are merged on top of the default request, see buildRequest.
	Overrides *RequestOverrides
}

type Review struct {
	Id        string  `json:"id"`
	UserName  string  `json:"userName"`
	UserImage *string `json:"userImage,omitempty"`
	Date      string  `json:"date"`
	Url       string  `json:"url"`
	Score     int     `json:"score"`
	Title     string  `json:"title"`
	Text      string  `json:"text"`
	ReplyDate *string `json:"replyDate,omitempty"`
	ReplyText *string `json:"replyText,omitempty"`
}
