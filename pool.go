// pool.go -- parallel chain producers feeding one shared table writer
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"runtime"
	"sync"
)

// generatorBufSize is how many chains each worker buffers locally
// before taking the writer lock to flush them.
const generatorBufSize = 8192

// Generate produces chainNum chains of chainLen steps each under hash
// function h (digestLen bytes wide) and appends them to w, using T =
// max(1, runtime.GOMAXPROCS(0)) worker goroutines. Work is split by
// count: the first T-1 workers each get chainNum/T chains (floor
// division), and the last absorbs the remainder. The order chains end
// up in the file is unspecified -- it depends on worker scheduling --
// which is fine because Sort fixes a canonical order afterward.
// Start-points are drawn from src.
func Generate(chainNum, chainLen uint64, h HashFunc, digestLen int, w *TableWriter, src *Source) error {
	t := runtime.GOMAXPROCS(0)
	if t < 1 {
		t = 1
	}
	tu := uint64(t)

	quota := make([]uint64, tu)
	base := chainNum / tu
	for i := range quota {
		quota[i] = base
	}
	quota[tu-1] += chainNum % tu

	errs := make([]error, tu)

	var wg sync.WaitGroup
	for i := uint64(0); i < tu; i++ {
		wg.Add(1)
		go func(i int, n uint64) {
			defer wg.Done()
			errs[i] = generateWorker(n, chainLen, h, digestLen, w, src)
		}(int(i), quota[i])
	}
	wg.Wait()

	return joinWorkerErrors(errs)
}

func generateWorker(n, chainLen uint64, h HashFunc, digestLen int, w *TableWriter, src *Source) error {
	buf := make([]Chain, 0, generatorBufSize)

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := w.Append(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	for i := uint64(0); i < n; i++ {
		start := src.NextSeed()
		end := Walk(start, int(chainLen), h, digestLen)
		buf = append(buf, Chain{Start: start, End: end})

		if len(buf) == generatorBufSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}
