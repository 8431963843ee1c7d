package playstore

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func loadFragment(t *testing.T, fragment string) *goquery.Document {
	t.Helper()
	doc, err := GoqueryLoader{}.Load(fragment)
	require.NoError(t, err)
	return doc
}

func mustExtract(t *testing.T, fragment string) []Review {
	t.Helper()
	reviews, err := extractReviews(loadFragment(t, fragment))
	require.NoError(t, err)
	return reviews
}

func TestExtractReviews(t *testing.T) {
	reviews := mustExtract(t, reviewsFixture)

	diff := cmp.Diff(expectedFixtureReviews, reviews)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestExtractReviewsEmpty(t *testing.T) {
	reviews := mustExtract(t, `<div class="no-reviews"></div>`)
	require.NotNil(t, reviews)
	require.Empty(t, reviews)
}

func TestExtractReviewsKeepsDocumentOrder(t *testing.T) {
	const count = 25

	var fragment strings.Builder
	for i := 0; i < count; i++ {
		fmt.Fprintf(
			&fragment,
			`<div class="single-review"><div class="review-header" data-reviewid="id-%d"></div></div>`,
			i,
		)
	}

	reviews := mustExtract(t, fragment.String())
	require.Len(t, reviews, count)
	for i, r := range reviews {
		require.Equal(t, fmt.Sprintf("id-%d", i), r.Id)
	}
}

func TestExtractReviewsMissingId(t *testing.T) {
	fragments := []string{
		`<div class="single-review"><div class="review-body">hi</div></div>`,
		`<div class="single-review"><div class="review-header"></div></div>`,
		`<div class="single-review"><div class="review-header" data-reviewid="  "></div></div>`,
		`<div class="single-review"><div class="review-header" data-reviewid="a"></div></div>
		<div class="single-review"></div>`,
	}
	for _, fragment := range fragments {
		reviews, err := extractReviews(loadFragment(t, fragment))
		require.ErrorIs(t, err, ErrMalformedResponse, fragment)
		require.Nil(t, reviews, fragment)
	}
}

func TestExtractReviewsOptionalFields(t *testing.T) {
	reviews := mustExtract(t, `<div class="single-review"><div class="review-header" data-reviewid="a"></div></div>`)
	require.Equal(t, []Review{{Id: "a"}}, reviews)
}

func TestExtractReviewsExactClassMatch(t *testing.T) {
	// blocks are matched on the exact class attribute
	reviews := mustExtract(t, `
		<div class="single-review"><div class="review-header" data-reviewid="a"></div></div>
		<div class="single-review featured"><div class="review-header" data-reviewid="b"></div></div>
	`)
	require.Len(t, reviews, 1)
	require.Equal(t, "a", reviews[0].Id)
}

func TestExtractReplyOnlyFromNextSibling(t *testing.T) {
	reviews := mustExtract(t, `
		<div class="single-review"><div class="review-header" data-reviewid="a"></div></div>
		<div class="single-review"><div class="review-header" data-reviewid="b"></div></div>
		<div class="developer-reply"><span class="review-date">Jan 1, 2018</span>Thanks!</div>
	`)
	require.Len(t, reviews, 2)

	require.Nil(t, reviews[0].ReplyDate)
	require.Nil(t, reviews[0].ReplyText)

	require.NotNil(t, reviews[1].ReplyDate)
	require.NotNil(t, reviews[1].ReplyText)
	require.Equal(t, "Jan 1, 2018", *reviews[1].ReplyDate)
	require.Equal(t, "Thanks!", *reviews[1].ReplyText)
}

func TestUserImage(t *testing.T) {
	table := []struct {
		name     string
		fragment string
		expected *string
	}{
		{
			name:     "plain",
			fragment: `<span class="responsive-img-hdpi"><span style="background-image:url(https://lh5.googleusercontent.com/a/photo.jpg)"></span></span>`,
			expected: strPtr("https://lh5.googleusercontent.com/a/photo.jpg"),
		},
		{
			name:     "other declarations",
			fragment: `<span class="responsive-img-hdpi"><span style="height: 48px; background-image: url(https://lh5.googleusercontent.com/b.jpg); width: 48px"></span></span>`,
			expected: strPtr("https://lh5.googleusercontent.com/b.jpg"),
		},
		{
			name:     "no background",
			fragment: `<span class="responsive-img-hdpi"><span style="width: 48px"></span></span>`,
		},
		{
			name:     "no style",
			fragment: `<span class="responsive-img-hdpi"><span></span></span>`,
		},
		{
			name:     "no avatar",
			fragment: `<span class="author-name">anonymous</span>`,
		},
		{
			name:     "class must match exactly",
			fragment: `<span class="responsive-img-hdpi large"><span style="background-image:url(c.jpg)"></span></span>`,
		},
	}

	for _, row := range table {
		doc := loadFragment(t, `<div class="single-review">`+row.fragment+`</div>`)
		result := userImage(doc.Find("div.single-review"))
		require.Equal(t, row.expected, result, row.name)
	}
}

func TestScoreFromLabel(t *testing.T) {
	table := []struct {
		label    string
		expected int
	}{
		{label: "Rated 4 stars out of five stars", expected: 4},
		{label: " Rated 5 stars out of five stars ", expected: 5},
		{label: "Rated 4 stars out of 5 stars", expected: 4},
		{label: "Rated 2 stars, 4 people found this helpful", expected: 2},
		{label: "5つ星のうち2つ星で評価しました", expected: 2},
		{label: "Rated 0 stars", expected: 0},
		// 9 is outside of the digit range and ignored
		{label: "Rated 3 stars out of 9", expected: 3},
		{label: "no digits here", expected: 0},
		{label: "", expected: 0},
	}

	for _, row := range table {
		require.Equal(t, row.expected, scoreFromLabel(row.label), row.label)
	}
}
