// Package corpindex loads the DART corp-code dump (CORPCODE.xml) into a
// name lookup table. The index is built once at startup and read-only
// afterwards, so concurrent lookups need no locking.
package corpindex

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one company in the corp-code dump.
type Entry struct {
	Code         string
	OriginalName string
}

// Index maps cleaned company names to corp codes.
type Index struct {
	byName map[string]Entry
}

// Load parses the corp-code XML at path.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse streams <list> records out of the corp-code XML. Records without a
// usable name or code are skipped. The dump is large, so elements are
// decoded one at a time rather than unmarshalling the whole document.
func Parse(r io.Reader) (*Index, error) {
	dec := xml.NewDecoder(r)
	idx := &Index{byName: make(map[string]Entry)}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpindex: parse: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "list" {
			continue
		}
		var rec struct {
			CorpName string `xml:"corp_name"`
			CorpCode string `xml:"corp_code"`
		}
		if err := dec.DecodeElement(&rec, &se); err != nil {
			return nil, fmt.Errorf("corpindex: decode record: %w", err)
		}
		name := CleanName(rec.CorpName)
		code := strings.TrimSpace(rec.CorpCode)
		if name == "" || code == "" {
			continue
		}
		idx.byName[name] = Entry{Code: code, OriginalName: strings.TrimSpace(rec.CorpName)}
	}
	return idx, nil
}

// CleanName normalizes a company name for lookup by dropping the "(주)"
// marker and surrounding whitespace.
func CleanName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, "(주)", ""))
}

// Lookup finds the entry for a cleaned company name.
func (idx *Index) Lookup(name string) (Entry, bool) {
	if idx == nil {
		return Entry{}, false
	}
	e, ok := idx.byName[name]
	return e, ok
}

// Len reports how many companies are indexed.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.byName)
}
