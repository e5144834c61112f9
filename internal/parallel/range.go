package parallel

// chunksPerWorker is how many contiguous ranges each worker gets on average.
// More than one per worker lets stealing even out slow ranges.
const chunksPerWorker = 4

// ForRange splits the index range [0, n) into contiguous chunks and calls fn
// once per chunk with its half-open bounds [start, end). It returns after every
// chunk has finished.
//
// fn must only write to output locations derived from its own range; chunks
// never overlap, so no synchronization is required between them.
func (p *WorkerPool) ForRange(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	chunks := p.workers * chunksPerWorker
	if chunks > n {
		chunks = n
	}
	if chunks <= 1 {
		fn(0, n)
		return
	}

	work := make([]func(), 0, chunks)
	for c := range chunks {
		start := c * n / chunks
		end := (c + 1) * n / chunks
		if start == end {
			continue
		}
		work = append(work, func() { fn(start, end) })
	}

	p.ExecuteAll(work)
}

// ForEach calls fn for every index in [0, n), distributing indices across
// workers in contiguous chunks.
func (p *WorkerPool) ForEach(n int, fn func(i int)) {
	p.ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}
