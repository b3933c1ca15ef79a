package main

import (
	"errors"
	"fmt"
	"io"
	"sync"

	dst "github.com/next-exp/evm_go/pkg"
)

type WorkerData struct {
	Seq  int
	Line int
	Data []byte
}

type WorkerResult struct {
	Seq   int
	Line  int
	Event dst.RecoEvent
	Err   error
}

func worker(id int, jobs <-chan WorkerData, results chan<- WorkerResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		if VerbosityLevel > 2 {
			message := fmt.Sprintf("Worker %d processing line %d", id, job.Line)
			logger.Info(message, "worker")
		}
		results <- buildEvent(job)
	}
}

func buildEvent(job WorkerData) (result WorkerResult) {
	result = WorkerResult{Seq: job.Seq, Line: job.Line}
	defer func() {
		if r := recover(); r != nil {
			result.Event = dst.RecoEvent{Error: true}
			result.Err = fmt.Errorf("recovered from panic on line %d: %v", job.Line, r)
		}
	}()

	event, err := parseEvent(job.Data)
	if err != nil {
		result.Event = dst.RecoEvent{Error: true}
		result.Err = fmt.Errorf("line %d: %w", job.Line, err)
		return result
	}
	result.Event = event
	return result
}

// startWorkers launches the pool and closes results once every worker is done.
func startWorkers(nWorkers int, jobs <-chan WorkerData) <-chan WorkerResult {
	if nWorkers < 1 {
		nWorkers = 1
	}
	results := make(chan WorkerResult, 100)
	var wg sync.WaitGroup
	for w := 1; w <= nWorkers; w++ {
		wg.Add(1)
		go worker(w, jobs, results, &wg)
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	return results
}

// sendEventsToWorkers feeds the pool and reports a read error, if any, on errc.
func sendEventsToWorkers(fileReader *FileReader, jobs chan<- WorkerData, errc chan<- error) {
	defer close(jobs)
	defer close(errc)
	seq := 0
	for {
		eventData, line, err := fileReader.getNextEvent()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			errc <- err
			return
		}
		jobs <- WorkerData{Seq: seq, Line: line, Data: eventData}
		seq++
	}
}

// processWorkerResults hands results to process in input order. It stops at
// the first error returned by process, draining the remaining results.
func processWorkerResults(results <-chan WorkerResult, process func(WorkerResult) error) (int, error) {
	pending := make(map[int]WorkerResult)
	next := 0
	processed := 0
	var firstErr error
	for result := range results {
		if firstErr != nil {
			continue
		}
		pending[result.Seq] = result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := process(r); err != nil {
				firstErr = err
				break
			}
			processed++
		}
	}
	return processed, firstErr
}
