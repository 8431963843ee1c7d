package playstore

import (
	"fmt"
	"regexp"
	"strings"

	"playstore-scraper/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	// ex. url(https://lh5.googleusercontent.com/.../photo.jpg)
	backgroundUrlRegex = regexp.MustCompile(`url\((.*)\)`)
	scoreDigitRegex    = regexp.MustCompile(`[0-5]`)
)

// extractReviews builds one Review per review block, in document order.
// It removes the "read more" links from the document.
//
// A block without a review id fails the whole page with ErrMalformedResponse,
// other missing fields are left empty.
func extractReviews(doc *goquery.Document) ([]Review, error) {
	blocks := doc.Find("div[class=single-review]")
	reviews := make([]Review, blocks.Length())
	var err error
	blocks.EachWithBreak(func(i int, block *goquery.Selection) bool {
		reviews[i], err = extractReview(block)
		if err != nil {
			err = fmt.Errorf("%w: review block %d: %w", ErrMalformedResponse, i, err)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func extractReview(block *goquery.Selection) (Review, error) {
	info := block.Find("div[class=review-info]")
	body := block.Find(".review-body")

	id := strings.TrimSpace(
		block.Find("div[class=review-header]").AttrOr("data-reviewid", ""),
	)
	if id == "" {
		return Review{}, fmt.Errorf("missing review id")
	}

	review := Review{
		Id:        id,
		UserName:  strings.TrimSpace(block.Find("span[class=author-name]").Text()),
		UserImage: userImage(block),
		Date:      strings.TrimSpace(block.Find("span[class=review-date]").Text()),
		Score: scoreFromLabel(
			block.Find(".star-rating-non-editable-container").AttrOr("aria-label", ""),
		),
		Title: strings.TrimSpace(body.Find("span[class=review-title]").Text()),
	}
	permalink, ok := info.Find(".reviews-permalink").Attr("href")
	if ok {
		review.Url = siteOrigin + permalink
	}

	body.Find(".review-link").Remove()
	review.Text = strings.TrimSpace(body.Text())

	reply := block.NextFiltered(".developer-reply")
	if reply.Length() > 0 {
		replyDate := strings.TrimSpace(reply.Find("span.review-date").Text())
		replyText := strings.TrimSpace(htmlutil.OwnText(reply))
		review.ReplyDate = &replyDate
		review.ReplyText = &replyText
	}

	return review, nil
}

// userImage reads the avatar url out of the inline background-image style of
// the avatar span, nil if there is none.
func userImage(block *goquery.Selection) *string {
	span := block.Find("span[class=responsive-img-hdpi] > span").First()
	style, ok := span.Attr("style")
	if !ok {
		return nil
	}
	background, ok := htmlutil.StyleProperty(style, "background-image")
	if !ok {
		return nil
	}
	match := backgroundUrlRegex.FindStringSubmatch(background)
	if match == nil {
		return nil
	}
	return &match[1]
}

// scoreFromLabel reads the star rating out of the aria-label of the rating
// widget, ex. "Rated 4 stars out of five stars".
//
// The label is free text, so the rating is taken from the digits 0-5 it
// contains. Japanese labels put the maximum before the rating
// ("5つ星のうち4つ星で評価"), so the smallest digit is the rating regardless
// of the locale. A label without digits scores 0.
func scoreFromLabel(label string) int {
	digits := scoreDigitRegex.FindAllString(strings.TrimSpace(label), -1)
	if len(digits) == 0 {
		return 0
	}

	score := 5
	for _, d := range digits {
		n := int(d[0] - '0')
		if n < score {
			score = n
		}
	}
	return score
}
