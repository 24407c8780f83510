package extent

import "sync"

// task splits data into workersCount contiguous chunks and hands each chunk to
// fn in its own goroutine, along with the worker index. Workers whose chunk is
// empty are not started.
func task[T any](workersCount int, data []T, fn func(worker int, chunk []T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start := workerID * chunkSize
		end := min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(workerID, start, end int) {
			defer wg.Done()
			fn(workerID, data[start:end])
		}(workerID, start, end)
	}
	wg.Wait()
}
