package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/helpchunk"
	"golang.org/x/net/html"
)

// ArticleSelector matches the primary content element of a page.
const ArticleSelector = "article"

// Ensure ArticleExtractor implements helpchunk.Extractor at compile time.
var _ helpchunk.Extractor = (*ArticleExtractor)(nil)

// ArticleExtractor returns the first <article> element of a page.
type ArticleExtractor struct{}

// NewArticleExtractor creates a new ArticleExtractor.
func NewArticleExtractor() *ArticleExtractor {
	return &ArticleExtractor{}
}

// Extract separates adjacent tags, parses the page and renders its first
// article element. Returns EEXTRACT if the page has no article.
func (e *ArticleExtractor) Extract(rawHTML string) (*helpchunk.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(SeparateTags(rawHTML)))
	if err != nil {
		return nil, helpchunk.WrapError(helpchunk.EEXTRACT, err, "failed to parse HTML")
	}

	article := doc.Find(ArticleSelector).First()
	if article.Length() == 0 {
		return nil, helpchunk.Errorf(helpchunk.EEXTRACT, "page has no <%s> element", ArticleSelector)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, article.Get(0)); err != nil {
		return nil, err
	}

	return &helpchunk.ExtractResult{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		ContentHTML: buf.String(),
	}, nil
}

// SeparateTags inserts a newline between every closing '>' that is
// immediately followed by an opening '<'. Markup written without
// whitespace between block elements otherwise tends to lose its line
// breaks in conversion.
func SeparateTags(rawHTML string) string {
	return strings.ReplaceAll(rawHTML, "><", ">\n<")
}
