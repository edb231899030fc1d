package penrose

import "sync"

// minParallel is the generation size below which SubdivideParallel does
// the work on the calling goroutine.
const minParallel = 1024

// Subdivide applies one deflation step to every triangle of g and returns
// the next generation. Children appear in the order of their parents.
// g is not modified.
func Subdivide(g Generation) Generation {
	out := make(Generation, 0, childCount(g))
	for _, t := range g {
		out = deflate(out, t)
	}
	return out
}

// SubdivideParallel returns the same generation as Subdivide, splitting the
// work over up to workers goroutines. Every worker appends into its own
// window of the output, so no locking is needed.
func SubdivideParallel(g Generation, workers int) Generation {
	if workers <= 1 || len(g) < minParallel {
		return Subdivide(g)
	}
	offsets := make([]int, len(g)+1)
	for i, t := range g {
		offsets[i+1] = offsets[i] + t.Kind.children()
	}
	out := make(Generation, offsets[len(g)])

	chunk := (len(g) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(g); lo += chunk {
		hi := min(lo+chunk, len(g))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			dst := out[offsets[lo]:offsets[lo]:offsets[hi]]
			for _, t := range g[lo:hi] {
				dst = deflate(dst, t)
			}
		}(lo, hi)
	}
	wg.Wait()
	return out
}

func childCount(g Generation) int {
	n := 0
	for _, t := range g {
		n += t.Kind.children()
	}
	return n
}

// deflate appends the children of t to dst.
func deflate(dst Generation, t Triangle) Generation {
	if t.Kind == Acute {
		return deflateAcute(dst, t)
	}
	return deflateObtuse(dst, t)
}

// deflateAcute splits an acute triangle into two acute and one obtuse.
// p is the base vertex tagged like the apex (C unless B matches), q the
// other one. P sits on A->p one base length from A, Q on A->q at base/Phi.
func deflateAcute(dst Generation, t Triangle) Generation {
	a := t.A
	p, q := t.C, t.B
	if t.B.Tag == a.Tag {
		p, q = t.B, t.C
	}
	base := Distance(p.Pos, q.Pos)
	pp := Vertex{Pos: Project(a.Pos, p.Pos, base), Tag: a.Tag}
	qq := Vertex{Pos: Project(a.Pos, q.Pos, base/Phi), Tag: a.Tag.Flip()}

	a2 := a.retag(a.Tag.Flip())
	p2 := p.retag(a.Tag.Flip())
	q2 := q.retag(a.Tag)

	return append(dst,
		Triangle{Kind: Acute, A: q2, B: qq, C: pp},
		Triangle{Kind: Acute, A: q2, B: p2, C: pp},
		Triangle{Kind: Obtuse, A: a2, B: pp, C: qq},
	)
}

// deflateObtuse splits an obtuse triangle into one obtuse and one acute.
// The edge from A to the base vertex tagged unlike A (C unless B differs)
// is cut at |A-x|/Phi from A.
func deflateObtuse(dst Generation, t Triangle) Generation {
	a := t.A
	cut, keep := t.C, t.B
	if t.B.Tag != a.Tag {
		cut, keep = t.B, t.C
	}
	pp := Vertex{Pos: Project(a.Pos, cut.Pos, Distance(a.Pos, cut.Pos)/Phi), Tag: cut.Tag}

	return append(dst,
		Triangle{Kind: Obtuse, A: cut, B: pp, C: keep},
		Triangle{Kind: Acute, A: a, B: pp, C: keep},
	)
}
