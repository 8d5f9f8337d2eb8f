package htmlopt

import "go.uber.org/zap"

// Report summarizes a batch run.
type Report struct {
	Found     int          // Candidate pages discovered
	Processed int          // Pages processed without error
	Results   []FileResult // One entry per candidate, in discovery order
}

// Failed returns the number of pages that could not be processed.
func (r *Report) Failed() int {
	return r.Found - r.Processed
}

// Run discovers the candidate pages and processes them one at a time, in
// discovery order. Per-file failures are recorded in the report and do not
// stop the run. Only a discovery failure is returned as an error.
func (o *Optimizer) Run() (*Report, error) {
	pages, err := o.Discover()
	if err != nil {
		o.logger.Error("discovery failed", zap.Error(err))
		return nil, err
	}
	o.logger.Debug("discovered pages", zap.Int("count", len(pages)))

	report := &Report{
		Found:   len(pages),
		Results: make([]FileResult, 0, len(pages)),
	}

	for _, page := range pages {
		result := o.ProcessFile(page)
		if result.OK() {
			report.Processed++
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}
