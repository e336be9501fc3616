package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/rgehrsitz/pensionleg/internal/domain"
	"github.com/rgehrsitz/pensionleg/internal/legislation"
)

// ParameterResolver resolves one query
type ParameterResolver interface {
	Resolve(profile domain.Profile, age, legislationYear int) (*legislation.Parameters, error)
}

// Job is one individual to resolve at a given age
type Job struct {
	Profile domain.Profile
	Age     int
}

// Result holds the outcome of one job. Exactly one of Params and Err is set.
type Result struct {
	ProfileID string
	Age       int
	Params    *legislation.Parameters
	Err       error
}

// JobsForYear builds one job per profile, at each profile's evaluation age in year
func JobsForYear(profiles []domain.Profile, year int) []Job {
	jobs := make([]Job, len(profiles))
	for i, p := range profiles {
		jobs[i] = Job{Profile: p, Age: p.EvaluationAge(year)}
	}
	return jobs
}

// Run resolves every job under legislationYear using up to workers goroutines.
// Results keep the order of jobs. A failing job does not affect the others.
// Once ctx is done no further job is dispatched, and jobs not yet started
// report ctx.Err().
func Run(ctx context.Context, resolver ParameterResolver, jobs []Job, legislationYear, workers int) []Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]Result, len(jobs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				job := jobs[i]
				res := Result{ProfileID: job.Profile.ID, Age: job.Age}
				if err := ctx.Err(); err != nil {
					res.Err = err
				} else {
					res.Params, res.Err = resolver.Resolve(job.Profile, job.Age, legislationYear)
				}
				results[i] = res
			}
		}()
	}

	dispatched := 0
dispatch:
	for i := range jobs {
		select {
		case <-ctx.Done():
			break dispatch
		case indexes <- i:
			dispatched++
		}
	}
	close(indexes)
	wg.Wait()

	for i := dispatched; i < len(jobs); i++ {
		results[i] = Result{ProfileID: jobs[i].Profile.ID, Age: jobs[i].Age, Err: ctx.Err()}
	}
	return results
}

// Summary counts resolved and failed jobs
type Summary struct {
	Resolved int
	Failed   int
}

// Summarize counts the outcomes of a run
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
		} else {
			s.Resolved++
		}
	}
	return s
}
