package transformer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/erraggy/kcoas"
	"github.com/erraggy/kcoas/internal/httputil"
	"github.com/erraggy/kcoas/oaserrors"
)

// source is a fully read input document.
type source struct {
	path        string
	data        []byte
	contentType string
}

// readPath reads a local file or fetches an http(s) URL.
func (t *Transformer) readPath(ctx context.Context, path string) (*source, error) {
	if httputil.IsURL(path) {
		client := t.HTTPClient
		if client == nil {
			client = httputil.NewClient(t.InsecureSkipVerify)
		} else if t.InsecureSkipVerify {
			t.log().Warn("InsecureSkipVerify ignored when HTTPClient provided; configure TLS on your client's transport")
		}

		userAgent := t.UserAgent
		if userAgent == "" {
			userAgent = kcoas.UserAgent()
		}

		data, contentType, err := httputil.Fetch(ctx, client, path, userAgent, t.MaxSize)
		if err != nil {
			return nil, &oaserrors.ParseError{Path: path, Message: "fetching reference page", Cause: err}
		}
		if !httputil.IsHTMLMediaType(contentType) {
			return nil, &oaserrors.ParseError{Path: path, Message: fmt.Sprintf("unexpected content type %q", contentType)}
		}
		return &source{path: path, data: data, contentType: contentType}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided input
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	return &source{path: path, data: data}, nil
}

// lookupEncoding resolves a WHATWG encoding label such as "latin1" or "utf-8".
func lookupEncoding(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "encoding", Value: label, Message: "unknown encoding label", Cause: err}
	}
	return enc, nil
}

// decode converts src to UTF-8. label wins over anything found in the document.
func decode(src *source, label string) ([]byte, string, error) {
	var (
		enc  encoding.Encoding
		name string
	)
	if label != "" {
		e, err := lookupEncoding(label)
		if err != nil {
			return nil, "", err
		}
		enc = e
		name, _ = htmlindex.Name(e)
	} else {
		var certain bool
		enc, name, certain = charset.DetermineEncoding(src.data, src.contentType)
		// The sniffer only looks at the first 1024 bytes and falls back to
		// windows-1252. An undeclared document that is valid UTF-8 is UTF-8.
		if !certain && name != "utf-8" && !declaresCharset(src.data) && utf8.Valid(src.data) {
			enc, name = unicode.UTF8, "utf-8"
		}
	}

	out, err := enc.NewDecoder().Bytes(src.data)
	if err != nil {
		return nil, "", &oaserrors.ParseError{Path: src.path, Message: "decoding " + name, Cause: err}
	}
	return out, name, nil
}

// declaresCharset reports whether a meta element within the sniffed prefix
// declares a charset, either as <meta charset> or through an http-equiv
// content value carrying "charset=". Mentions of the word elsewhere do not count.
func declaresCharset(data []byte) bool {
	if len(data) > 1024 {
		data = data[:1024]
	}
	z := html.NewTokenizer(bytes.NewReader(data))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "meta" || !hasAttr {
				continue
			}
			for more := true; more; {
				var key, val []byte
				key, val, more = z.TagAttr()
				switch string(key) {
				case "charset":
					return true
				case "content":
					if bytes.Contains(bytes.ToLower(val), []byte("charset=")) {
						return true
					}
				}
			}
		}
	}
}

// parseHTML parses UTF-8 HTML.
func parseHTML(path string, data []byte) (*html.Node, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "parsing HTML", Cause: err}
	}
	return doc, nil
}
