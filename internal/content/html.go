package content

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// maxConsecutiveBRs is how many <br> in a row survive ScrubHTML.
const maxConsecutiveBRs = 2

var nbspPattern = regexp.MustCompile("(?i)&nbsp;|\xc2\xa0")

// NormalizeNBSP replaces non-breaking spaces with regular spaces.
func NormalizeNBSP() TransformerFunc {
	return func(input []byte) ([]byte, error) {
		return nbspPattern.ReplaceAll(input, []byte{' '}), nil
	}
}

// SanitizeHTML strips everything but simple text formatting and links.
func SanitizeHTML() TransformerFunc {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("b", "strong", "i", "em", "u", "br", "p", "ul", "ol", "li", "code", "pre")
	policy.AllowStandardURLs()
	policy.AllowAttrs("href").OnElements("a")
	policy.RequireNoFollowOnLinks(false)
	return func(input []byte) ([]byte, error) {
		return policy.SanitizeBytes(input), nil
	}
}

// ScrubHTML collapses runs of <br> longer than maxConsecutiveBRs.
func ScrubHTML() TransformerFunc {
	return func(input []byte) ([]byte, error) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML: %w", err)
		}
		body := doc.Find("body")
		if body.Length() == 0 {
			body = doc.Selection
		}
		run := 0
		body.Contents().Each(func(_ int, s *goquery.Selection) {
			switch {
			case goquery.NodeName(s) == "br":
				run++
				if run > maxConsecutiveBRs {
					s.Remove()
				}
			case goquery.NodeName(s) == "#text" && strings.TrimSpace(s.Text()) == "":
				// whitespace between <br>s does not end a run
			default:
				run = 0
			}
		})
		out, err := body.Html()
		if err != nil {
			return nil, fmt.Errorf("failed to render scrubbed HTML: %w", err)
		}
		return []byte(out), nil
	}
}

// HTMLToMarkdown converts HTML into CommonMark.
func HTMLToMarkdown() TransformerFunc {
	conv := converter.NewConverter(
		converter.WithEscapeMode(converter.EscapeModeSmart),
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithEmDelimiter("_"),
				commonmark.WithLinkEmptyContentBehavior(commonmark.LinkBehaviorSkip),
				commonmark.WithLinkEmptyHrefBehavior(commonmark.LinkBehaviorSkip),
			),
		),
	)
	return func(input []byte) ([]byte, error) {
		return conv.ConvertReader(bytes.NewReader(input))
	}
}

// Description is the full pipeline applied to a plant description.
func Description() TransformerFunc {
	return Chain(NormalizeNBSP(), SanitizeHTML(), ScrubHTML(), HTMLToMarkdown())
}

// DescriptionToMarkdown converts one HTML description to Markdown.
func DescriptionToMarkdown(html string) (string, error) {
	out, err := Description()([]byte(html))
	if err != nil {
		return "", fmt.Errorf("failed to convert description: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
