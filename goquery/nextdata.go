package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/helpchunk"
	"github.com/tidwall/gjson"
)

// NextDataSelector matches the script element holding Next.js page data.
const NextDataSelector = "script#__NEXT_DATA__"

// NavigationPath is the gjson path of the help article tree inside the
// page data: a list of sections, each with a list of entries.
const NavigationPath = "props.pageProps.helpArticleTree"

// Ensure NextDataParser implements helpchunk.NavigationParser at compile time.
var _ helpchunk.NavigationParser = (*NextDataParser)(nil)

// NextDataParser reads the help article tree embedded by Next.js sites.
type NextDataParser struct{}

// NewNextDataParser creates a new NextDataParser.
func NewNextDataParser() *NextDataParser {
	return &NextDataParser{}
}

// ParseNavigation extracts document references from the page data script.
// Entries without a url (or with a null or empty url) are skipped. Any
// other deviation from the expected shape fails with EDISCOVERY.
func (p *NextDataParser) ParseNavigation(html string, indexURL string) (*helpchunk.Navigation, error) {
	origin, err := originOf(indexURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, helpchunk.WrapError(helpchunk.EDISCOVERY, err, "failed to parse index HTML")
	}

	scripts := doc.Find(NextDataSelector)
	switch scripts.Length() {
	case 0:
		return nil, helpchunk.Errorf(helpchunk.EDISCOVERY, "index page has no %s element", NextDataSelector)
	case 1:
	default:
		return nil, helpchunk.Errorf(helpchunk.EDISCOVERY, "index page has %d %s elements", scripts.Length(), NextDataSelector)
	}

	data := scripts.Text()
	if !gjson.Valid(data) {
		return nil, helpchunk.Errorf(helpchunk.EDISCOVERY, "page data is not valid JSON")
	}

	tree := gjson.Get(data, NavigationPath)
	if !tree.IsArray() {
		return nil, helpchunk.Errorf(helpchunk.EDISCOVERY, "page data has no %s array", NavigationPath)
	}

	sections := tree.Array()
	nav := &helpchunk.Navigation{Sections: len(sections)}

	for i, section := range sections {
		if !section.IsObject() {
			return nil, helpchunk.Errorf(helpchunk.EDISCOVERY, "section %d is not an object", i)
		}
		entries := section.Get("entries")
		if !entries.IsArray() {
			return nil, helpchunk.Errorf(helpchunk.EDISCOVERY, "section %d has no entries array", i)
		}

		for j, entry := range entries.Array() {
			if !entry.IsObject() {
				return nil, helpchunk.Errorf(helpchunk.EDISCOVERY, "entry %d of section %d is not an object", j, i)
			}

			u := entry.Get("url")
			switch u.Type {
			case gjson.Null:
				continue
			case gjson.String:
				if u.Str == "" {
					continue
				}
			default:
				return nil, helpchunk.Errorf(helpchunk.EDISCOVERY, "entry %d of section %d has a non-string url", j, i)
			}

			ref, err := url.Parse(u.Str)
			if err != nil {
				return nil, helpchunk.WrapError(helpchunk.EDISCOVERY, err, "entry %d of section %d has an invalid url", j, i)
			}

			nav.Documents = append(nav.Documents, helpchunk.DocumentRef{
				URL:     origin.ResolveReference(ref).String(),
				Section: i,
			})
		}
	}

	return nav, nil
}

// originOf returns the scheme and host of rawURL.
func originOf(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, helpchunk.Errorf(helpchunk.EINVALID, "invalid index URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, helpchunk.Errorf(helpchunk.EINVALID, "index URL must be absolute: %q", rawURL)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}
