package feed

import (
	"bytes"
	"fmt"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"
)

// WordPress export namespaces, oldest first. Items are read with the first
// one that carries any elements.
var exportNamespaces = []string{
	"http://wordpress.org/export/1.0/",
	"http://wordpress.org/export/1.1/",
	"http://wordpress.org/export/1.2/",
}

// exportPrefixes returns the prefixes the document's root element declares
// for the known export namespaces, in probing order.
func exportPrefixes(data []byte) ([]string, error) {
	p := xpp.NewXMLPullParser(bytes.NewReader(data), false, charset.NewReaderLabel)

	for {
		event, err := p.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to read root element: %w", err)
		}
		if event == xpp.StartTag {
			break
		}
		if event == xpp.EndDocument {
			return nil, fmt.Errorf("no root element before document end")
		}
	}

	prefixes := make([]string, 0, len(exportNamespaces))
	for _, space := range exportNamespaces {
		if prefix, ok := p.Spaces[space]; ok {
			prefixes = append(prefixes, prefix)
		}
	}

	return prefixes, nil
}
