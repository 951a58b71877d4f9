// Package cleanup holds shutdown jobs registered while the API is wired
// together and runs them when the process exits.
package cleanup

import "log"

type Job struct {
	Name string
	F    func() error
}

var jobs []*Job

func Register(j *Job) {
	jobs = append(jobs, j)
}

// CleanUp runs the registered jobs in reverse registration order. The
// database pool is registered first, so it closes last.
func CleanUp() {
	for i := len(jobs) - 1; i >= 0; i-- {
		j := jobs[i]
		log.Printf("cleanup job %s started", j.Name)
		if err := j.F(); err != nil {
			log.Printf("cleanup job %s finished with error: %v", j.Name, err)
			continue
		}
		log.Printf("cleanup job %s finished", j.Name)
	}
}
