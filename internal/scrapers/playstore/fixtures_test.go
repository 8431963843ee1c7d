package playstore

import (
	"encoding/json"
	"testing"

	_ "embed"
)

//go:embed testdata/reviews.html
var reviewsFixture string

func strPtr(s string) *string {
	return &s
}

// expectedFixtureReviews are the records contained in testdata/reviews.html.
var expectedFixtureReviews = []Review{
	{
		Id:        "gp:AOqpTOE1",
		UserName:  "Jane Doe",
		UserImage: strPtr("https://lh5.googleusercontent.com/photo-1.jpg"),
		Date:      "January 3, 2018",
		Url:       "https://play.google.com/store/apps/details?id=com.example.app&reviewId=1",
		Score:     4,
		Title:     "Great app",
		Text:      "Great app Works exactly as expected.",
	},
	{
		Id:        "gp:AOqpTOE2",
		UserName:  "John Smith",
		Date:      "January 2, 2018",
		Url:       "https://play.google.com/store/apps/details?id=com.example.app&reviewId=2",
		Score:     1,
		Title:     "Crashes",
		Text:      "Crashes It crashes on startup.",
		ReplyDate: strPtr("Jan 1, 2018"),
		ReplyText: strPtr("Thanks!"),
	},
	{
		Id:        "gp:AOqpTOE3",
		UserName:  "山田太郎",
		UserImage: strPtr("https://lh3.googleusercontent.com/photo-3.jpg"),
		Date:      "2018年1月1日",
		Url:       "https://play.google.com/store/apps/details?id=com.example.app&reviewId=3",
		Score:     3,
		Text:      "普通です。",
	},
}

// envelope wraps an html fragment the way the review endpoint does.
func envelope(t testing.TB, fragment string) string {
	t.Helper()
	payload, err := json.Marshal([]any{
		[]any{"ecr", 1, fragment, 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	return ")]}'\n\n" + string(payload)
}
