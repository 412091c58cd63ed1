// Package emit formats lead-synset results for output: one line per result,
// "source;node_id;synset_id;[lemma1,lemma2,…]".
package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lkopocinski/paintball-go/internal/paintballengine"
)

// Result pairs a source lemma with one lead surfaced for it.
type Result struct {
	Source string
	Lead   paintballengine.Lead
}

// Write formats every result as "source;node_id;synset_id;[lemma1,lemma2,…]"
// and writes one line per result to w, flushing a buffered writer at the end.
func Write(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := fmt.Fprintf(bw, "%s;%s;%d;[%s]\n",
			r.Source, r.Lead.NodeID, r.Lead.SynsetID, strings.Join(r.Lead.Lemmas, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}
