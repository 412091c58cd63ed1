package paintballengine

import (
	"github.com/lkopocinski/paintball-go/internal/impedance"
	"github.com/lkopocinski/paintball-go/internal/lexgraph"
)

// fT is the transmittance function: the carrier activation scaled by the
// edge's sealed weight.
func fT(e lexgraph.Edge, a float64) float64 {
	return e.Weight * a
}

// fI is the impedance function: the carrier activation scaled by the
// impedance lookup between the edge used to arrive (in) and the edge about
// to be followed (out).
func fI(imp *impedance.Table, in, out lexgraph.Edge, a float64) float64 {
	return imp.Impedance(in.RelID, out.RelID) * a
}

// otherEndpoint returns the neighbor reached by e from node's side of it. On
// a self-loop (e.From == e.To == node) it resolves to node itself.
func otherEndpoint(e lexgraph.Edge, node string) string {
	if e.From == node {
		return e.To
	}
	return e.From
}

// Spread runs Level 0 (act_replication) and Level 1 (act_rep_trans) for every
// seed in T, accumulating into a single Q. Each seed's own activation is
// never added to Q; only Level 1's post-order additions are.
func Spread(lg *lexgraph.Graph, imp *impedance.Table, mu, epsilon float64, seeds []SeedActivation) (Activation, error) {
	q := make(Activation)
	for _, s := range seeds {
		if err := spreadFromSeed(lg, imp, mu, epsilon, s.Node.ID, s.Activation, q); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// spreadFrame is one pending call of act_rep_trans(center, cameFrom, edge,
// activation) — dispatch edge from center, having arrived at center from
// cameFrom — or, when finishing is set, the deferred Q[t] += activation that
// must run only after every child call pushed for t has been fully
// processed.
//
// center and cameFrom are deliberately distinct: the cut test compares the
// node reached across edge to cameFrom (the node one hop back), not to
// center itself. Collapsing them into a single field only cuts self-loops
// at center and lets spreading bounce back across the edge it just arrived
// on, corrupting the accumulated Q.
//
// Implementers MUST NOT add a global visited set here: the only cycle guard
// is the cameFrom comparison inside the loop below, and adding a broader
// guard changes the accumulated Q values.
type spreadFrame struct {
	finishing  bool
	center     string
	cameFrom   string
	edge       lexgraph.Edge
	t          string
	activation float64
}

// spreadFromSeed drives act_replication/act_rep_trans for one seed using an
// explicit work-stack instead of native recursion, so depth is bounded by
// heap rather than goroutine stack. The stack reproduces the recursive call
// order exactly: a finishing frame for t is pushed before t's children, so —
// being a LIFO stack — the children pop and fully resolve before the
// finishing frame pops and adds to Q[t].
func spreadFromSeed(lg *lexgraph.Graph, imp *impedance.Table, mu, epsilon float64, seedID string, aSeed float64, q Activation) error {
	if aSeed < epsilon {
		return nil
	}

	seedEdges, err := lg.AllEdgesOf(seedID)
	if err != nil {
		return err
	}

	var stack []spreadFrame
	for i := len(seedEdges) - 1; i >= 0; i-- {
		e := seedEdges[i]
		stack = append(stack, spreadFrame{
			center:     seedID,
			cameFrom:   seedID,
			edge:       e,
			activation: fT(e, mu*aSeed),
		})
	}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if fr.finishing {
			q[fr.t] += fr.activation
			continue
		}

		t := otherEndpoint(fr.edge, fr.center)
		if t == fr.cameFrom {
			continue
		}
		if fr.activation < epsilon {
			continue
		}

		stack = append(stack, spreadFrame{finishing: true, t: t, activation: fr.activation})

		childEdges, err := lg.AllEdgesOf(t)
		if err != nil {
			return err
		}
		for i := len(childEdges) - 1; i >= 0; i-- {
			ep := childEdges[i]
			stack = append(stack, spreadFrame{
				center:     t,
				cameFrom:   fr.center,
				edge:       ep,
				activation: fI(imp, fr.edge, ep, fT(ep, mu*fr.activation)),
			})
		}
	}
	return nil
}
