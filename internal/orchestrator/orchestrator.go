// Package orchestrator drives the paintball engine across a set of
// knowledge-source entries: for each source lemma, it pools initial
// activation from its targets, spreads it, promotes to synsets, extracts
// leads, and collects the results.
package orchestrator

import (
	"fmt"
	"sync"

	"github.com/lkopocinski/paintball-go/internal/emit"
	"github.com/lkopocinski/paintball-go/internal/impedance"
	"github.com/lkopocinski/paintball-go/internal/knowledgesource"
	"github.com/lkopocinski/paintball-go/internal/lexgraph"
	"github.com/lkopocinski/paintball-go/internal/paintballengine"
	"github.com/lkopocinski/paintball-go/internal/wordnet"
)

// Engine bundles everything a run needs once loaded: the sealed lexical
// graph (transmittance already applied), the synset graph used only for
// lead extraction, the impedance table, the synset-size oracle, and the
// run's Params. None of these are mutated once a run starts.
type Engine struct {
	Lexical   *lexgraph.Graph
	Synsets   *lexgraph.Graph
	Impedance *impedance.Table
	Oracle    wordnet.Oracle
	Params    paintballengine.Params
}

// ProcessEntry runs the full pipeline for one knowledge-source entry:
// BuildInitialActivation → Spread → PromoteToSynsets → ExtractLeads, and
// pairs every resulting lead with the entry's source lemma.
func (e *Engine) ProcessEntry(entry knowledgesource.Entry) ([]emit.Result, error) {
	las := make([]paintballengine.LemmaActivation, 0, len(entry.Targets))
	for _, ts := range entry.Targets {
		nodes := e.Lexical.NodesForLemma(ts.Target)
		if len(nodes) == 0 {
			continue
		}
		las = append(las, paintballengine.LemmaActivation{
			Lemma:      ts.Target,
			Nodes:      nodes,
			Activation: ts.Support,
		})
	}

	seeds := paintballengine.BuildInitialActivation(las, e.Params.Tau0)
	if len(seeds) == 0 {
		return nil, nil
	}

	q, err := paintballengine.Spread(e.Lexical, e.Impedance, e.Params.Mu, e.Params.Epsilon, seeds)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: spread %q: %w", entry.Source, err)
	}

	qSyn := paintballengine.PromoteToSynsets(q, e.Lexical, e.Oracle, e.Params.N1, e.Params.N2)
	leads, err := paintballengine.ExtractLeads(qSyn, e.Synsets, e.Params.Tau3)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: extract leads %q: %w", entry.Source, err)
	}

	results := make([]emit.Result, 0, len(leads))
	for _, lead := range leads {
		results = append(results, emit.Result{Source: entry.Source, Lead: lead})
	}
	return results, nil
}

// Run processes every entry strictly sequentially, in entry order, and
// concatenates their results.
func (e *Engine) Run(entries []knowledgesource.Entry) ([]emit.Result, error) {
	var all []emit.Result
	for _, entry := range entries {
		results, err := e.ProcessEntry(entry)
		if err != nil {
			return nil, err
		}
		all = append(all, results...)
	}
	return all, nil
}

// RunParallel is an optional parallel entry point: it fans entries out
// across workers goroutines against the same already-sealed Engine, each
// goroutine only ever reading shared state and owning its own
// Q/T/Q_synset/induced-subgraph locals inside ProcessEntry. The transmittance
// seal must have already happened before Run/RunParallel is called —
// RunParallel never mutates e.
func (e *Engine) RunParallel(entries []knowledgesource.Entry, workers int) ([]emit.Result, error) {
	if workers < 2 {
		return e.Run(entries)
	}

	type outcome struct {
		index   int
		results []emit.Result
		err     error
	}

	// NodeForSynset builds its index on first call; build it here, before any
	// worker starts, so the workers only read it.
	e.Synsets.NodeForSynset(lexgraph.NoSynset)

	jobs := make(chan int)
	out := make(chan outcome, len(entries))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results, err := e.ProcessEntry(entries[idx])
				out <- outcome{index: idx, results: results, err: err}
			}
		}()
	}

	go func() {
		for i := range entries {
			jobs <- i
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	ordered := make([][]emit.Result, len(entries))
	for o := range out {
		if o.err != nil {
			return nil, o.err
		}
		ordered[o.index] = o.results
	}

	var all []emit.Result
	for _, results := range ordered {
		all = append(all, results...)
	}
	return all, nil
}
