package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"playstore-scraper/internal/scrapers/playstore"
	"playstore-scraper/pkg/htmlutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderJson(w io.Writer, reviews []playstore.Review) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(reviews)
}

func stars(score int) string {
	score = max(0, min(score, 5))
	return strings.Repeat("★", score) + strings.Repeat("☆", 5-score)
}

func renderTable(w io.Writer, reviews []playstore.Review) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Author", "Score", "Review", "Reply"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Review", WidthMax: 60},
		{Name: "Reply", WidthMax: 40},
	})

	for _, r := range reviews {
		reply := ""
		if r.ReplyText != nil {
			reply = htmlutil.Normalize(*r.ReplyText)
		}
		t.AppendRow(table.Row{
			r.Date,
			r.UserName,
			stars(r.Score),
			htmlutil.Normalize(r.Text),
			reply,
		})
	}

	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d reviews", len(reviews)), ""})
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.Render()
}

func render(w io.Writer, format string, reviews []playstore.Review) error {
	switch format {
	case "json":
		return renderJson(w, reviews)
	case "table":
		renderTable(w, reviews)
		return nil
	}
	return fmt.Errorf("unknown format %q, expected table or json", format)
}
